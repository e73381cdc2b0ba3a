package stream

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

// A Segment is a band of light on the strip whose properties can be tweened.
type Segment struct {
	Name       string
	Position   float64
	Length     float64
	Brightness float64
	Colour     colorful.Color
}

// NewSegment creates a Segment from its configuration.
func NewSegment(cfg SegmentConfig) (*Segment, error) {
	s := new(Segment)
	s.Name = cfg.Name
	s.Position = cfg.Position
	s.Length = cfg.Length
	s.Brightness = 1.0
	if cfg.Brightness != nil {
		s.Brightness = *cfg.Brightness
	}
	if cfg.Colour != "" {
		c, err := colorful.Hex(cfg.Colour)
		if err != nil {
			return nil, fmt.Errorf("segment %s colour: %w", cfg.Name, err)
		}
		s.Colour = c
	}
	return s, nil
}

var segmentProperties = map[string]tween.Kind{
	"position":   tween.KindFloat,
	"length":     tween.KindFloat,
	"brightness": tween.KindFloat,
	"colour":     tween.KindColour,
	"span":       tween.KindVector2,
}

// Compound properties are tweened through one float plugin per part, so they collide
// with tweens on any of their parts.
var compoundProperties = map[string][]string{
	"span": {"position", "length"},
}

// PropertyKind returns the kind of value a property holds.
func PropertyKind(property string) (tween.Kind, error) {
	k, ok := segmentProperties[property]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	return k, nil
}

// Plugin returns a plugin that tweens a single property towards end.
func (s *Segment) Plugin(property string, end tween.Value) (*tween.Plugin, error) {
	if _, ok := compoundProperties[property]; ok {
		return nil, fmt.Errorf("%w: %q is compound, use Plugins", ErrUnknownProperty, property)
	}
	kind, err := PropertyKind(property)
	if err != nil {
		return nil, err
	}
	get, set := s.binding(property)
	return tween.NewPlugin(kind, property, end, get, set)
}

// Plugins returns the plugins that tween property towards end. A compound property
// yields one plugin per part, taking the matching component of end.
func (s *Segment) Plugins(property string, end tween.Value) ([]*tween.Plugin, error) {
	parts, ok := compoundProperties[property]
	if !ok {
		p, err := s.Plugin(property, end)
		if err != nil {
			return nil, err
		}
		return []*tween.Plugin{p}, nil
	}
	if want := segmentProperties[property]; end.Kind() != want {
		return nil, fmt.Errorf("plugin %s: %w: got %s, want %s", property, tween.ErrTypeMismatch, end.Kind(), want)
	}

	plugins := make([]*tween.Plugin, 0, len(parts))
	for i, part := range parts {
		p, err := s.Plugin(part, tween.Float(end.Component(i)))
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

func (s *Segment) binding(property string) (tween.Getter, tween.Setter) {
	switch property {
	case "position":
		return func() tween.Value { return tween.Float(s.Position) },
			func(v tween.Value) { s.Position = v.AsFloat() }
	case "length":
		return func() tween.Value { return tween.Float(s.Length) },
			func(v tween.Value) { s.Length = v.AsFloat() }
	case "brightness":
		return func() tween.Value { return tween.Float(s.Brightness) },
			func(v tween.Value) { s.Brightness = v.AsFloat() }
	case "colour":
		return func() tween.Value { return tween.Colour(s.Colour) },
			func(v tween.Value) { s.Colour = v.AsColour() }
	}
	return nil, nil
}

// Render blends the segment over the frame. Edges fade over feather pixels following
// the curve sampled in lut.
func (s *Segment) Render(f *Frame, feather float64, lut []float64) {
	if s.Length <= 0 || s.Brightness <= 0 {
		return
	}
	from := int(math.Floor(s.Position))
	to := int(math.Ceil(s.Position + s.Length))
	if from < 0 {
		from = 0
	}
	if to > f.Len() {
		to = f.Len()
	}

	edge := math.Min(feather, s.Length/2)
	for i := from; i < to; i++ {
		centre := float64(i) + 0.5
		d := math.Min(centre-s.Position, s.Position+s.Length-centre)
		if d <= 0 {
			continue
		}
		gain := 1.0
		if edge > 0 && d < edge {
			gain = util.SampleLut(lut, d/edge)
		}
		amount := math.Min(gain*s.Brightness, 1.0)
		f.pixels[i] = f.pixels[i].BlendRgb(s.Colour, amount)
	}
}

func (s *Segment) String() string { return s.Name }
