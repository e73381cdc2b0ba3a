package stream

import (
	"fmt"
	"log"
	"time"

	"github.com/matt-g-everett/ledtween/tween"
)

// A Resetter is an Animation that can be returned to its initial state.
type Resetter interface {
	Reset()
}

// Controller that manages animations, cross-fading from one to the next.
type Controller struct {
	animations          []Animation
	current             int
	animation           Animation
	nextAnimation       Animation
	cycle               time.Duration
	lastCycleMs         int64
	started             bool
	runtimeMs           int64
	frameRate           float64
	transition          float64
	transitionTimeSecs  float64
	transitionIncrement float64
}

// NewController creates an instance of a Controller.
func NewController(animations []Animation, frameRate float64, cycle time.Duration,
	transitionTimeSecs float64) *Controller {

	c := new(Controller)
	c.animations = animations
	c.current = 0
	c.animation = animations[0]
	c.nextAnimation = nil
	c.cycle = cycle

	c.frameRate = frameRate
	c.transition = 0.0
	c.transitionTimeSecs = transitionTimeSecs
	if transitionTimeSecs > 0 {
		c.transitionIncrement = 1.0 / (c.frameRate * c.transitionTimeSecs)
	} else {
		c.transitionIncrement = 1.0
	}

	return c
}

// NewShow builds the scenes described by config and a Controller cycling through them.
func NewShow(config Config, opts tween.Options) (*Controller, []*Scene, error) {
	scenes := make([]*Scene, 0, len(config.Scenes))
	animations := make([]Animation, 0, len(config.Scenes))
	for _, sc := range config.Scenes {
		s, err := NewScene(sc, config.Strip.Pixels, config.Strip.Feather, config.Gradient, opts)
		if err != nil {
			return nil, nil, err
		}
		scenes = append(scenes, s)
		animations = append(animations, s)
	}
	if len(animations) == 0 {
		return nil, nil, fmt.Errorf("%w: no scenes", ErrInvalidConfig)
	}

	cycle := time.Duration(config.Strip.CycleSecs * float64(time.Second))
	return NewController(animations, config.Strip.FrameRate, cycle, config.Strip.TransitionSecs), scenes, nil
}

// CalculateFrame renders the current animation, blending into the next one while a
// transition is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	var f *Frame
	c.runtimeMs = runtimeMs
	if !c.started {
		c.lastCycleMs = runtimeMs
		c.started = true
	}
	if c.nextAnimation == nil && c.cycle > 0 && len(c.animations) > 1 &&
		runtimeMs-c.lastCycleMs >= c.cycle.Milliseconds() {
		c.cycleAnimation()
		c.lastCycleMs = runtimeMs
	}

	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(runtimeMs)
		f2 := c.nextAnimation.CalculateFrame(runtimeMs)
		c.transition += c.transitionIncrement
		if c.transition > 1.0 {
			c.transition = 1.0
		}
		f = f1.InterpolateFrame(f2, c.transition)

		if c.transition >= 1.0 {
			if r, ok := c.animation.(Resetter); ok {
				r.Reset()
			}
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0.0
		}
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	return f
}

// Current returns the animation being shown, or faded from during a transition.
func (c *Controller) Current() Animation { return c.animation }

// Transitioning reports whether a cross-fade is in progress.
func (c *Controller) Transitioning() bool { return c.nextAnimation != nil }

func (c *Controller) cycleAnimation() {
	c.current = (c.current + 1) % len(c.animations)
	c.nextAnimation = c.animations[c.current]
	if s, ok := c.nextAnimation.(*Scene); ok {
		log.Printf("Cycling to scene %s", s.Name())
	}
}
