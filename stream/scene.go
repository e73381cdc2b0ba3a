package stream

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

const featherLutSize = 32

// A Scene is an Animation that plays a script of tween cues over a set of segments.
type Scene struct {
	name       string
	background colorful.Color
	numPixels  int
	feather    float64
	lut        []float64

	segments []*Segment
	initial  []Segment
	byName   map[string]*Segment

	cues     []cue
	next     int
	loopSecs float64
	clock    float64

	engine  *tween.Engine
	playing *tween.Sequence

	lastMs  int64
	started bool
}

// NewScene creates a Scene from its configuration.
func NewScene(cfg SceneConfig, numPixels int, feather float64, gradient GradientTable, opts tween.Options) (*Scene, error) {
	s := new(Scene)
	s.name = cfg.Name
	s.numPixels = numPixels
	s.feather = feather
	s.loopSecs = cfg.LoopSecs

	if cfg.Background != "" {
		c, err := colorful.Hex(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("scene %s background: %w", cfg.Name, err)
		}
		s.background = c
	}

	curve, err := tween.Curve("inOutQuad")
	if err != nil {
		return nil, err
	}
	s.lut = util.GenerateLut(featherLutSize, curve)

	s.byName = make(map[string]*Segment)
	for _, sc := range cfg.Segments {
		seg, err := NewSegment(sc)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byName[seg.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate segment %q in scene %s", ErrInvalidConfig, seg.Name, cfg.Name)
		}
		s.byName[seg.Name] = seg
		s.segments = append(s.segments, seg)
		s.initial = append(s.initial, *seg)
	}

	for _, cc := range cfg.Cues {
		c, err := compileCue(cc, s.byName, gradient)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", cfg.Name, err)
		}
		s.cues = append(s.cues, c)
	}
	sort.SliceStable(s.cues, func(i, j int) bool { return s.cues[i].at < s.cues[j].at })

	s.engine = tween.NewEngine(opts)
	s.playing = tween.NewSequence()

	return s, nil
}

func (s *Scene) Name() string { return s.name }

func (s *Scene) Engine() *tween.Engine { return s.engine }

// Segment returns the named segment, or nil.
func (s *Scene) Segment(name string) *Segment { return s.byName[name] }

// Playing returns the number of tweens started by cues that are still live.
func (s *Scene) Playing() int { return s.playing.Len() }

// CalculateFrame advances the scene to runtimeMs and renders it.
func (s *Scene) CalculateFrame(runtimeMs int64) *Frame {
	if !s.started {
		s.lastMs = runtimeMs
		s.started = true
	}
	dt := float64(runtimeMs-s.lastMs) / 1000.0
	if dt < 0 {
		dt = 0
	}
	s.lastMs = runtimeMs
	s.Advance(dt)

	f := NewFrame(s.numPixels)
	f.Fill(s.background)
	for _, seg := range s.segments {
		seg.Render(f, s.feather, s.lut)
	}
	return f
}

// Advance moves the script forward by dt seconds, firing due cues and updating tweens.
// On the frame the script loops, tweens only see the time after the wrap.
func (s *Scene) Advance(dt float64) {
	s.clock += dt
	if s.loopSecs > 0 && s.clock >= s.loopSecs {
		s.clock = math.Mod(s.clock, s.loopSecs)
		s.rewind()
		dt = s.clock
	}

	for s.next < len(s.cues) && s.cues[s.next].at <= s.clock {
		s.fire(s.cues[s.next])
		s.next++
	}
	s.engine.Update(dt)
}

// Reset stops every tween and returns the scene to its initial state.
func (s *Scene) Reset() {
	s.rewind()
	s.clock = 0
	s.started = false
}

func (s *Scene) rewind() {
	for _, t := range s.playing.Tweens() {
		s.engine.Stop(t)
	}
	s.engine.Clear()
	for i, seg := range s.segments {
		*seg = s.initial[i]
	}
	s.next = 0
}

func (s *Scene) fire(c cue) {
	t, err := c.newTween()
	if err != nil {
		log.Printf("Scene %s: cue %s.%s: %v", s.name, c.segment, c.property, err)
		return
	}
	t.OnComplete = func(t *tween.Tweener) {
		s.playing.Remove(t)
	}
	s.playing.Append(t)
	s.engine.Play(t)
}
