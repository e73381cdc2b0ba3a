package tween

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

const epsilon = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func linear(t *testing.T) EaseFunc {
	t.Helper()
	e, err := EaseByName("linear")
	if err != nil {
		t.Fatalf("EaseByName(linear) error = %v", err)
	}
	return e
}

func TestPlugin_AbsoluteDelta(t *testing.T) {
	p, err := NewPlugin(KindVector3, "position", Vec3(10, -4, 2), nil, nil)
	if err != nil {
		t.Fatalf("NewPlugin() error = %v", err)
	}
	if err := p.SetStart(Vec3(1, 2, 3)); err != nil {
		t.Fatalf("SetStart() error = %v", err)
	}
	p.ComputeDelta()

	want := [3]float64{9, -6, -1}
	if got := p.Delta().AsVector3(); got != want {
		t.Errorf("Delta() = %v, want %v", got, want)
	}
}

func TestPlugin_EvaluateEndpoints(t *testing.T) {
	names := []string{
		"linear", "inQuad", "outQuad", "inOutQuad", "inCubic", "outCubic",
		"inOutCubic", "inSine", "outSine", "inOutSine",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			e, err := EaseByName(name)
			if err != nil {
				t.Fatalf("EaseByName() error = %v", err)
			}
			var pushed Value
			p, _ := NewPlugin(KindVector4, "v", Vec4(5, 6, 7, 8), nil, func(v Value) { pushed = v })
			p.WithEase(e)
			_ = p.SetStart(Vec4(-1, 0, 1, 2))
			p.ComputeDelta()

			start := p.Evaluate(0, 2)
			for i := 0; i < 4; i++ {
				if !approx(start.Component(i), p.Start().Component(i), 1e-6) {
					t.Errorf("Evaluate(0)[%d] = %g, want %g", i, start.Component(i), p.Start().Component(i))
				}
			}
			end := p.Evaluate(2, 2)
			for i := 0; i < 4; i++ {
				if !approx(end.Component(i), p.End().Component(i), 1e-6) {
					t.Errorf("Evaluate(2)[%d] = %g, want %g", i, end.Component(i), p.End().Component(i))
				}
			}
			if pushed != end {
				t.Errorf("setter got %v, want %v", pushed, end)
			}
		})
	}
}

func TestPlugin_RelativeDeltaIsEnd(t *testing.T) {
	p := FloatPlugin("brightness", 0.25, nil, nil).Relative()
	_ = p.SetStart(Float(3))
	p.ComputeDelta()

	if got := p.Delta().AsFloat(); got != 0.25 {
		t.Errorf("Delta() = %g, want 0.25", got)
	}
	p.WithEase(linear(t))
	if got := p.Evaluate(1, 1).AsFloat(); !approx(got, 3.25, epsilon) {
		t.Errorf("Evaluate(1, 1) = %g, want 3.25", got)
	}
}

func TestPlugin_RelativeFromStartsAtOffset(t *testing.T) {
	p := Vector2Plugin("span", [2]float64{1, -2}, nil, nil).Relative().From()
	_ = p.SetEnd(Vec2(10, 20))
	_ = p.SetStart(Vec2(1, -2))
	p.ComputeDelta()

	if got, want := p.Start().AsVector2(), [2]float64{11, 18}; got != want {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := p.Delta().AsVector2(), [2]float64{-1, 2}; got != want {
		t.Errorf("Delta() = %v, want %v", got, want)
	}
}

func TestPlugin_FromWithoutRelative(t *testing.T) {
	p := FloatPlugin("length", 4, nil, nil).From()
	_ = p.SetEnd(Float(10))
	_ = p.SetStart(Float(4))
	p.ComputeDelta()

	if p.Start().AsFloat() != 4 || p.Delta().AsFloat() != 6 {
		t.Errorf("start, delta = %g, %g, want 4, 6", p.Start().AsFloat(), p.Delta().AsFloat())
	}
}

func TestPlugin_DurationFromSpeed(t *testing.T) {
	tests := []struct {
		name  string
		start Value
		end   Value
		speed float64
		want  float64
	}{
		{"vector", Vec3(0, 0, 0), Vec3(3, 4, 0), 5, 1},
		{"negative delta", Float(10), Float(4), 2, 3},
		{"negative speed", Vec2(0, 0), Vec2(0, 8), -4, 2},
		{"zero delta", Vec4(1, 2, 3, 4), Vec4(1, 2, 3, 4), 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlugin(tt.end.Kind(), "p", tt.end, nil, nil)
			if err != nil {
				t.Fatalf("NewPlugin() error = %v", err)
			}
			_ = p.SetStart(tt.start)
			p.ComputeDelta()
			got := p.DurationFromSpeed(tt.speed)
			if got < 0 || !approx(got, tt.want, epsilon) {
				t.Errorf("DurationFromSpeed(%g) = %g, want %g", tt.speed, got, tt.want)
			}
		})
	}
}

func TestPlugin_TypeMismatch(t *testing.T) {
	if _, err := NewPlugin(KindFloat, "x", Vec2(1, 2), nil, nil); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("NewPlugin() error = %v, want ErrTypeMismatch", err)
	}

	p := ColourPlugin("colour", colorful.Color{R: 1}, nil, nil)
	if err := p.SetStart(Float(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetStart() error = %v, want ErrTypeMismatch", err)
	}
	if err := p.SetEnd(Vec3(1, 0, 0)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetEnd() error = %v, want ErrTypeMismatch", err)
	}
	if p.End().AsColour() != (colorful.Color{R: 1}) {
		t.Errorf("End() changed after rejected SetEnd: %v", p.End())
	}
}

func TestPlugin_ColourMidpoint(t *testing.T) {
	var got colorful.Color
	p := ColourPlugin("colour", colorful.Color{R: 1, G: 0.5, B: 0},
		func() colorful.Color { return colorful.Color{} },
		func(c colorful.Color) { got = c })
	p.WithEase(linear(t))
	_ = p.SetStart(Colour(colorful.Color{R: 0, G: 0.5, B: 1}))
	p.ComputeDelta()
	p.Evaluate(0.5, 1)

	want := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	if !approx(got.R, want.R, epsilon) || !approx(got.G, want.G, epsilon) || !approx(got.B, want.B, epsilon) {
		t.Errorf("Evaluate(0.5, 1) pushed %v, want %v", got, want)
	}
}

func TestKey_Collides(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"same", Key{Kind: KindFloat, Property: "x"}, Key{Kind: KindFloat, Property: "x"}, true},
		{"other property", Key{Kind: KindFloat, Property: "x"}, Key{Kind: KindFloat, Property: "y"}, false},
		{"other kind", Key{Kind: KindFloat, Property: "x"}, Key{Kind: KindVector2, Property: "x"}, false},
		{"new wildcard", Key{Wildcard: true}, Key{Kind: KindColour, Property: "colour"}, true},
		{"old wildcard", Key{Kind: KindColour, Property: "colour"}, Key{Wildcard: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Collides(tt.b); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}
