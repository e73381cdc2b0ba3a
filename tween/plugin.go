package tween

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Getter reads the live value of a property.
type Getter func() Value

// A Setter writes a computed value back to a property.
type Setter func(Value)

// Key identifies the property a plugin drives for overwrite detection. A wildcard key
// collides with every other key on the same target.
type Key struct {
	Kind     Kind
	Property string
	Wildcard bool
}

// Collides reports whether two plugins on the same target drive the same property.
func (k Key) Collides(o Key) bool {
	return k.Wildcard || o.Wildcard || (k.Kind == o.Kind && k.Property == o.Property)
}

// A Plugin interpolates one property of a tween target.
type Plugin struct {
	kind     Kind
	property string
	wildcard bool

	declared Value
	start    Value
	end      Value
	delta    Value

	relative bool
	from     bool
	ease     EaseFunc
	duration float64

	get Getter
	set Setter
}

// NewPlugin creates a plugin that tweens property towards end. The end value must be of
// the given kind.
func NewPlugin(kind Kind, property string, end Value, get Getter, set Setter) (*Plugin, error) {
	if err := checkKind(kind, end); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", property, err)
	}
	p := new(Plugin)
	p.kind = kind
	p.property = property
	p.declared = end
	p.start = Value{kind: kind}
	p.end = end
	p.delta = Value{kind: kind}
	p.get = get
	p.set = set
	return p, nil
}

func mustPlugin(kind Kind, property string, end Value, get Getter, set Setter) *Plugin {
	p, err := NewPlugin(kind, property, end, get, set)
	if err != nil {
		panic(err)
	}
	return p
}

func bind[T any](get func() T, set func(T), wrap func(T) Value, unwrap func(Value) T) (Getter, Setter) {
	var g Getter
	var s Setter
	if get != nil {
		g = func() Value { return wrap(get()) }
	}
	if set != nil {
		s = func(v Value) { set(unwrap(v)) }
	}
	return g, s
}

// FloatPlugin creates a plugin for a scalar property.
func FloatPlugin(property string, end float64, get func() float64, set func(float64)) *Plugin {
	g, s := bind(get, set, Float, Value.AsFloat)
	return mustPlugin(KindFloat, property, Float(end), g, s)
}

// Vector2Plugin creates a plugin for a 2 component vector property.
func Vector2Plugin(property string, end [2]float64, get func() [2]float64, set func([2]float64)) *Plugin {
	wrap := func(v [2]float64) Value { return Vec2(v[0], v[1]) }
	g, s := bind(get, set, wrap, Value.AsVector2)
	return mustPlugin(KindVector2, property, wrap(end), g, s)
}

// Vector3Plugin creates a plugin for a 3 component vector property.
func Vector3Plugin(property string, end [3]float64, get func() [3]float64, set func([3]float64)) *Plugin {
	wrap := func(v [3]float64) Value { return Vec3(v[0], v[1], v[2]) }
	g, s := bind(get, set, wrap, Value.AsVector3)
	return mustPlugin(KindVector3, property, wrap(end), g, s)
}

// Vector4Plugin creates a plugin for a 4 component vector property.
func Vector4Plugin(property string, end [4]float64, get func() [4]float64, set func([4]float64)) *Plugin {
	wrap := func(v [4]float64) Value { return Vec4(v[0], v[1], v[2], v[3]) }
	g, s := bind(get, set, wrap, Value.AsVector4)
	return mustPlugin(KindVector4, property, wrap(end), g, s)
}

// ColourPlugin creates a plugin for a colour property. Channels are interpolated in
// RGB space.
func ColourPlugin(property string, end colorful.Color, get func() colorful.Color, set func(colorful.Color)) *Plugin {
	g, s := bind(get, set, Colour, Value.AsColour)
	return mustPlugin(KindColour, property, Colour(end), g, s)
}

// Relative marks the declared value as an offset rather than an absolute value.
func (p *Plugin) Relative() *Plugin {
	p.relative = true
	return p
}

// WithEase overrides the tween's ease for this plugin.
func (p *Plugin) WithEase(e EaseFunc) *Plugin {
	p.ease = e
	return p
}

// From marks the plugin as playing from the declared value to the live value.
func (p *Plugin) From() *Plugin {
	p.from = true
	return p
}

// Wildcard makes the plugin overwrite every other plugin on the same target.
func (p *Plugin) Wildcard() *Plugin {
	p.wildcard = true
	return p
}

func (p *Plugin) Kind() Kind { return p.kind }

func (p *Plugin) Property() string { return p.property }

func (p *Plugin) Key() Key {
	return Key{Kind: p.kind, Property: p.property, Wildcard: p.wildcard}
}

func (p *Plugin) Start() Value { return p.start }

func (p *Plugin) End() Value { return p.end }

func (p *Plugin) Delta() Value { return p.delta }

func (p *Plugin) Duration() float64 { return p.duration }

func (p *Plugin) IsRelative() bool { return p.relative }

func (p *Plugin) IsFrom() bool { return p.from }

// SetStart sets the start value. In from mode a relative value is an offset from the
// end value.
func (p *Plugin) SetStart(v Value) error {
	if err := checkKind(p.kind, v); err != nil {
		return fmt.Errorf("plugin %s start: %w", p.property, err)
	}
	if p.from && p.relative {
		p.start = p.end.Add(v)
	} else {
		p.start = v
	}
	return nil
}

// SetEnd sets the end value as given. Relativity is resolved by ComputeDelta.
func (p *Plugin) SetEnd(v Value) error {
	if err := checkKind(p.kind, v); err != nil {
		return fmt.Errorf("plugin %s end: %w", p.property, err)
	}
	p.end = v
	return nil
}

// ComputeDelta derives the change value from the start and end values. It must be
// called again whenever either is changed.
func (p *Plugin) ComputeDelta() {
	if p.relative && !p.from {
		p.delta = p.end
	} else {
		p.delta = p.end.Sub(p.start)
	}
}

// DurationFromSpeed returns the time needed to cover the delta at speed units per
// second. The caller must not pass a zero speed.
func (p *Plugin) DurationFromSpeed(speed float64) float64 {
	d := p.delta.Magnitude() / speed
	if d < 0 {
		d = -d
	}
	return d
}

// Evaluate computes the eased value at elapsed and pushes it to the target.
func (p *Plugin) Evaluate(elapsed, duration float64) Value {
	e := p.ease
	if e == nil {
		e = defaultEase
	}
	out := Value{kind: p.kind}
	for i := 0; i < p.kind.Len(); i++ {
		out.c[i] = e(elapsed, p.start.c[i], p.delta.c[i], duration)
	}
	if p.set != nil {
		p.set(out)
	}
	return out
}

// startup resolves the endpoints against the live property value.
func (p *Plugin) startup(duration, speed float64) error {
	live := p.declared
	if p.get != nil {
		live = p.get()
	}
	if p.from {
		if err := p.SetEnd(live); err != nil {
			return err
		}
		if err := p.SetStart(p.declared); err != nil {
			return err
		}
	} else {
		if err := p.SetStart(live); err != nil {
			return err
		}
		if err := p.SetEnd(p.declared); err != nil {
			return err
		}
	}
	p.ComputeDelta()
	if speed > 0 {
		p.duration = p.DurationFromSpeed(speed)
	} else {
		p.duration = duration
	}
	return nil
}

// update evaluates the plugin at the tween's elapsed time, clamped to its own duration.
func (p *Plugin) update(elapsed float64) {
	if elapsed > p.duration {
		elapsed = p.duration
	}
	p.Evaluate(elapsed, p.duration)
}
