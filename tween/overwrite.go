package tween

import (
	"log"

	"github.com/google/uuid"
)

// An OverwriteEvent describes a plugin removed from a running tween because a newer
// tween claimed the same property.
type OverwriteEvent struct {
	Target   any
	Property string
	OldKind  Kind
	NewKind  Kind
	OldTween uuid.UUID
	NewTween uuid.UUID
	// Killed is set when the old tween lost its last plugin and was terminated.
	Killed bool
}

// OverwriteManager tracks running tweens, meaning every tween that has started, paused
// or not, and resolves conflicts when a new one drives a property already animated.
type OverwriteManager struct {
	running []*Tweener

	// Logger receives overwrite diagnostics when Verbose is set.
	Logger  *log.Logger
	Verbose bool
	// OnOverwrite is called for every removed plugin.
	OnOverwrite func(OverwriteEvent)
}

func NewOverwriteManager() *OverwriteManager {
	m := new(OverwriteManager)
	m.running = make([]*Tweener, 0)
	return m
}

// Add registers t. Plugins of running tweens on the same target that collide with any
// of t's plugins are removed, and tweens left without plugins are killed.
func (m *OverwriteManager) Add(t *Tweener) {
	addPlugs := t.plugins

scan:
	for i := len(m.running) - 1; i >= 0; i-- {
		tw := m.running[i]
		if tw == t || tw.target != t.target {
			continue
		}
		for _, addPlug := range addPlugs {
			for c := len(tw.plugins) - 1; c >= 0; c-- {
				plug := tw.plugins[c]
				if !addPlug.Key().Collides(plug.Key()) {
					continue
				}

				tw.plugins = append(tw.plugins[:c], tw.plugins[c+1:]...)
				killed := len(tw.plugins) == 0
				m.notify(OverwriteEvent{
					Target:   tw.target,
					Property: plug.property,
					OldKind:  plug.kind,
					NewKind:  addPlug.kind,
					OldTween: tw.id,
					NewTween: t.id,
					Killed:   killed,
				})

				if killed {
					tw.detach()
					m.running = append(m.running[:i], m.running[i+1:]...)
					tw.Kill()
					continue scan
				}
			}
		}
	}

	m.running = append(m.running, t)
}

// Remove unregisters the first entry identical to t. Removing a tween that is not
// registered does nothing.
func (m *OverwriteManager) Remove(t *Tweener) {
	for i, tw := range m.running {
		if tw == t {
			m.running = append(m.running[:i], m.running[i+1:]...)
			return
		}
	}
}

// RemoveAll drops every entry without killing it.
func (m *OverwriteManager) RemoveAll() {
	m.running = make([]*Tweener, 0)
}

func (m *OverwriteManager) Len() int { return len(m.running) }

// Running returns a snapshot of the registry in insertion order.
func (m *OverwriteManager) Running() []*Tweener {
	out := make([]*Tweener, len(m.running))
	copy(out, m.running)
	return out
}

func (m *OverwriteManager) notify(ev OverwriteEvent) {
	if m.Verbose && m.Logger != nil {
		m.Logger.Printf("%sPlugin is overwriting %sPlugin for %v.%s", ev.NewKind, ev.OldKind, ev.Target, ev.Property)
	}
	if m.OnOverwrite != nil {
		m.OnOverwrite(ev)
	}
}
