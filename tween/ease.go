package tween

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// An EaseFunc returns the value at elapsed of a component that moves from start by
// delta over duration. Implementations must be pure.
type EaseFunc func(elapsed, start, delta, duration float64) float64

// Ease adapts a normalised easing curve, such as those in github.com/fogleman/ease,
// into an EaseFunc. Progress is clamped to [0, 1] and a zero duration snaps to the end.
func Ease(curve func(t float64) float64) EaseFunc {
	return func(elapsed, start, delta, duration float64) float64 {
		if duration <= 0 {
			return start + delta
		}
		t := elapsed / duration
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return start + delta*curve(t)
	}
}

// DefaultEase is used by tweens that do not name an ease.
const DefaultEase = "outQuad"

var defaultEase = Ease(ease.OutQuad)

var curves = map[string]func(float64) float64{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// Curve returns the normalised curve registered under name.
func Curve(name string) (func(float64) float64, error) {
	if name == "" {
		name = DefaultEase
	}
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return c, nil
}

// EaseByName returns the EaseFunc registered under name. An empty name selects
// DefaultEase.
func EaseByName(name string) (EaseFunc, error) {
	c, err := Curve(name)
	if err != nil {
		return nil, err
	}
	return Ease(c), nil
}

// EaseNames lists the registered ease names in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
