package tween

// A Sequence groups tweens so they can be tracked and stopped together. It holds
// membership only; playback is driven by the Engine.
type Sequence struct {
	tweens []*Tweener
}

func NewSequence() *Sequence {
	return new(Sequence)
}

// Append adds t to the sequence, moving it out of any previous container.
func (s *Sequence) Append(t *Tweener) {
	if t.parent == s {
		return
	}
	t.detach()
	t.parent = s
	s.tweens = append(s.tweens, t)
}

// Remove drops t from the sequence and reports whether it was a member.
func (s *Sequence) Remove(t *Tweener) bool {
	for i, m := range s.tweens {
		if m == t {
			s.tweens = append(s.tweens[:i], s.tweens[i+1:]...)
			if t.parent == s {
				t.parent = nil
			}
			return true
		}
	}
	return false
}

func (s *Sequence) Contains(t *Tweener) bool {
	for _, m := range s.tweens {
		if m == t {
			return true
		}
	}
	return false
}

func (s *Sequence) Len() int { return len(s.tweens) }

// Tweens returns a snapshot of the members.
func (s *Sequence) Tweens() []*Tweener {
	out := make([]*Tweener, len(s.tweens))
	copy(out, s.tweens)
	return out
}
