package tween

import (
	"io"
	"log"
)

// Options configures an Engine.
type Options struct {
	Logger *log.Logger
	// Verbose logs every overwrite.
	Verbose     bool
	OnOverwrite func(OverwriteEvent)
}

// An Engine drives tweens from a single thread. Every Update starts the tweens whose
// delay has elapsed and advances the running ones in registration order.
type Engine struct {
	manager *OverwriteManager
	pending []*Tweener
	logger  *log.Logger
}

// NewEngine creates an Engine with its own OverwriteManager.
func NewEngine(opts Options) *Engine {
	e := new(Engine)
	e.logger = opts.Logger
	if e.logger == nil {
		e.logger = log.New(io.Discard, "", 0)
	}
	e.manager = NewOverwriteManager()
	e.manager.Logger = e.logger
	e.manager.Verbose = opts.Verbose
	e.manager.OnOverwrite = opts.OnOverwrite
	return e
}

func (e *Engine) Manager() *OverwriteManager { return e.manager }

// Play queues t. It starts, and is registered for overwrite checks, on the first
// Update after its delay.
func (e *Engine) Play(t *Tweener) {
	if t.killed || t.started {
		return
	}
	for _, p := range e.pending {
		if p == t {
			return
		}
	}
	e.pending = append(e.pending, t)
}

// Update advances simulated time by dt seconds. A tween whose delay runs out during
// the frame is advanced only by the time left after its delay.
func (e *Engine) Update(dt float64) {
	running := e.manager.Running()
	started := e.startDue(dt)

	for _, t := range running {
		e.step(t, dt)
	}
	for _, t := range started {
		e.step(t, t.overrun())
	}
}

func (e *Engine) step(t *Tweener, dt float64) {
	if t.killed {
		return
	}
	if t.advance(dt) {
		e.manager.Remove(t)
		if t.OnComplete != nil {
			t.OnComplete(t)
		}
	}
}

// startDue starts and registers the pending tweens whose delay has elapsed.
func (e *Engine) startDue(dt float64) []*Tweener {
	if len(e.pending) == 0 {
		return nil
	}
	waiting := e.pending[:0]
	due := make([]*Tweener, 0, len(e.pending))
	for _, t := range e.pending {
		if t.wait(dt) {
			due = append(due, t)
		} else {
			waiting = append(waiting, t)
		}
	}
	for i := len(waiting); i < len(e.pending); i++ {
		e.pending[i] = nil
	}
	e.pending = waiting

	started := due[:0]
	for _, t := range due {
		if t.killed {
			continue
		}
		if err := t.start(); err != nil {
			e.logger.Printf("Failed to start %v: %v", t, err)
			t.detach()
			t.Kill()
			continue
		}
		e.manager.Add(t)
		started = append(started, t)
	}
	return started
}

// Stop unregisters, detaches and kills t. It is safe to call more than once.
func (e *Engine) Stop(t *Tweener) {
	for i, p := range e.pending {
		if p == t {
			e.pending = append(e.pending[:i], e.pending[i+1:]...)
			break
		}
	}
	e.manager.Remove(t)
	t.detach()
	t.Kill()
}

// Clear kills every pending and running tween and resets the registry.
func (e *Engine) Clear() {
	for _, t := range e.pending {
		t.Kill()
	}
	e.pending = nil
	for _, t := range e.manager.Running() {
		t.Kill()
	}
	e.manager.RemoveAll()
}

func (e *Engine) Pending() int { return len(e.pending) }

func (e *Engine) Running() int { return e.manager.Len() }
