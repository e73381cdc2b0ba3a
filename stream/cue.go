package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// Gradient colours are picked at full chroma and low luminance to suit the LEDs.
const (
	gradientChroma    = 1.0
	gradientLuminance = 0.05
)

// A cue is a validated CueConfig bound to its segment.
type cue struct {
	at       float64
	segment  *Segment
	property string
	value    tween.Value
	relative bool
	params   tween.Params
}

func compileCue(cfg CueConfig, segments map[string]*Segment, gradient GradientTable) (cue, error) {
	var c cue
	seg, ok := segments[cfg.Segment]
	if !ok {
		return c, fmt.Errorf("%w: %q", ErrUnknownSegment, cfg.Segment)
	}
	kind, err := PropertyKind(cfg.Property)
	if err != nil {
		return c, err
	}

	var value tween.Value
	if cfg.Gradient != nil {
		if kind != tween.KindColour {
			return c, fmt.Errorf("%w: gradient on %s property %q", ErrInvalidValue, kind, cfg.Property)
		}
		value = tween.Colour(gradient.GetColor(*cfg.Gradient, gradientChroma, gradientLuminance))
	} else if value, err = parseValue(cfg.Value, kind); err != nil {
		return c, fmt.Errorf("cue %s.%s: %w", cfg.Segment, cfg.Property, err)
	}

	if cfg.At < 0 || cfg.Duration < 0 || cfg.Delay < 0 || cfg.Speed < 0 {
		return c, fmt.Errorf("%w: cue %s.%s has negative timing", ErrInvalidConfig, cfg.Segment, cfg.Property)
	}
	if _, err := tween.EaseByName(cfg.Ease); err != nil {
		return c, err
	}

	c.at = cfg.At
	c.segment = seg
	c.property = cfg.Property
	c.value = value
	c.relative = cfg.Relative
	c.params = tween.Params{
		Duration:   cfg.Duration,
		SpeedBased: cfg.Speed > 0,
		Speed:      cfg.Speed,
		Delay:      cfg.Delay,
		From:       cfg.From,
		Ease:       cfg.Ease,
	}
	return c, nil
}

// newTween creates the tween declared by the cue.
func (c cue) newTween() (*tween.Tweener, error) {
	plugins, err := c.segment.Plugins(c.property, c.value)
	if err != nil {
		return nil, err
	}
	if c.relative {
		for _, p := range plugins {
			p.Relative()
		}
	}
	return tween.New(c.segment, c.params, plugins...)
}

func parseValue(raw interface{}, kind tween.Kind) (tween.Value, error) {
	if s, ok := raw.(string); ok {
		if kind != tween.KindColour {
			return tween.Value{}, fmt.Errorf("%w: %q for %s", ErrInvalidValue, s, kind)
		}
		col, err := colorful.Hex(s)
		if err != nil {
			return tween.Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return tween.Colour(col), nil
	}

	var comps []float64
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			f, ok := toFloat(item)
			if !ok {
				return tween.Value{}, fmt.Errorf("%w: %v is not a number", ErrInvalidValue, item)
			}
			comps = append(comps, f)
		}
	default:
		f, ok := toFloat(v)
		if !ok {
			return tween.Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, raw)
		}
		comps = []float64{f}
	}
	if len(comps) != kind.Len() {
		return tween.Value{}, fmt.Errorf("%w: %s needs %d components, got %d", ErrInvalidValue, kind, kind.Len(), len(comps))
	}

	switch kind {
	case tween.KindFloat:
		return tween.Float(comps[0]), nil
	case tween.KindVector2:
		return tween.Vec2(comps[0], comps[1]), nil
	case tween.KindVector3:
		return tween.Vec3(comps[0], comps[1], comps[2]), nil
	case tween.KindVector4:
		return tween.Vec4(comps[0], comps[1], comps[2], comps[3]), nil
	case tween.KindColour:
		return tween.Colour(colorful.Color{R: comps[0], G: comps[1], B: comps[2]}), nil
	}
	return tween.Value{}, fmt.Errorf("%w: unsupported kind %s", ErrInvalidValue, kind)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
