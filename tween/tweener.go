package tween

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Params configures a tween.
type Params struct {
	// Duration in seconds. Ignored by speed based tweens.
	Duration float64
	// SpeedBased derives each plugin's duration from Speed, in units per second.
	SpeedBased bool
	Speed      float64
	// Delay in seconds before the tween starts and is registered.
	Delay float64
	// From plays from the declared values to the values live at start.
	From bool
	// Ease names the default ease of the plugins; EaseFunc takes precedence.
	Ease     string
	EaseFunc EaseFunc
}

// A Container holds tweens as members. Tweens keep a non-owning reference to their
// container so they can be detached from it when overwritten.
type Container interface {
	Remove(t *Tweener) bool
}

// A Tweener animates one or more properties of a target.
type Tweener struct {
	id      uuid.UUID
	target  any
	plugins []*Plugin
	params  Params

	duration  float64
	elapsed   float64
	delayLeft float64

	started  bool
	complete bool
	killed   bool

	parent Container

	OnStart    func(*Tweener)
	OnUpdate   func(*Tweener)
	OnComplete func(*Tweener)
	OnKill     func(*Tweener)
}

// New creates a tween driving the given plugins on target. The target is compared by
// identity and must be a non-nil pointer.
func New(target any, params Params, plugins ...*Plugin) (*Tweener, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidTarget)
	}
	if rv := reflect.ValueOf(target); rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a pointer", ErrInvalidTarget, target)
	}
	if len(plugins) == 0 {
		return nil, ErrNoPlugins
	}
	if params.Duration < 0 || params.Delay < 0 {
		return nil, fmt.Errorf("%w: duration %g delay %g", ErrInvalidDuration, params.Duration, params.Delay)
	}
	if params.SpeedBased && params.Speed <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSpeed, params.Speed)
	}

	e := params.EaseFunc
	if e == nil {
		var err error
		if e, err = EaseByName(params.Ease); err != nil {
			return nil, err
		}
	}

	t := new(Tweener)
	t.id = uuid.New()
	t.target = target
	t.params = params
	t.duration = params.Duration
	t.delayLeft = params.Delay
	t.plugins = make([]*Plugin, 0, len(plugins))
	for _, p := range plugins {
		if p == nil {
			return nil, fmt.Errorf("%w: nil plugin", ErrNoPlugins)
		}
		if params.From {
			p.from = true
		}
		if p.ease == nil {
			p.ease = e
		}
		t.plugins = append(t.plugins, p)
	}

	return t, nil
}

func (t *Tweener) ID() uuid.UUID { return t.id }

func (t *Tweener) Target() any { return t.target }

// Plugins returns the plugins still driven by the tween.
func (t *Tweener) Plugins() []*Plugin {
	out := make([]*Plugin, len(t.plugins))
	copy(out, t.plugins)
	return out
}

func (t *Tweener) Duration() float64 { return t.duration }

func (t *Tweener) Elapsed() float64 { return t.elapsed }

func (t *Tweener) IsStarted() bool { return t.started }

func (t *Tweener) IsComplete() bool { return t.complete }

func (t *Tweener) IsKilled() bool { return t.killed }

// IsSequenced reports whether the tween belongs to a container.
func (t *Tweener) IsSequenced() bool { return t.parent != nil }

func (t *Tweener) Container() Container { return t.parent }

// Kill terminates the tween. It is safe to call more than once.
func (t *Tweener) Kill() {
	if t.killed {
		return
	}
	t.killed = true
	t.plugins = nil
	if t.OnKill != nil {
		t.OnKill(t)
	}
}

func (t *Tweener) detach() {
	if t.parent != nil {
		t.parent.Remove(t)
		t.parent = nil
	}
}

// wait consumes dt from the start delay and reports whether the tween is due.
func (t *Tweener) wait(dt float64) bool {
	t.delayLeft -= dt
	return t.delayLeft <= 0
}

// overrun returns how far the last waited frame ran past the end of the delay.
func (t *Tweener) overrun() float64 {
	if t.delayLeft < 0 {
		return -t.delayLeft
	}
	return 0
}

func (t *Tweener) start() error {
	speed := 0.0
	if t.params.SpeedBased {
		speed = t.params.Speed
	}
	longest := 0.0
	for _, p := range t.plugins {
		if err := p.startup(t.params.Duration, speed); err != nil {
			return err
		}
		if p.duration > longest {
			longest = p.duration
		}
	}
	if t.params.SpeedBased {
		t.duration = longest
	}
	t.started = true

	for _, p := range t.plugins {
		if p.from {
			p.update(0)
		}
	}
	if t.OnStart != nil {
		t.OnStart(t)
	}
	return nil
}

// advance moves the tween forward by dt seconds and reports whether it completed.
func (t *Tweener) advance(dt float64) bool {
	if t.killed || t.complete {
		return t.complete
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.complete = true
	}
	for _, p := range t.plugins {
		p.update(t.elapsed)
	}
	if t.OnUpdate != nil {
		t.OnUpdate(t)
	}
	return t.complete
}

func (t *Tweener) String() string {
	return fmt.Sprintf("tween %s on %v", t.id, t.target)
}
