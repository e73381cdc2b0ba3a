package stream

import (
	"errors"
	"log"
	"sync"
	"time"
)

// A Sink displays frames.
type Sink interface {
	SendFrame(f *Frame) error
}

// Streamer that streams RGB data frames from an Animation to a Sink.
type Streamer struct {
	animation Animation
	sink      Sink
	interval  time.Duration

	mu   sync.Mutex
	last *Frame

	done     chan struct{}
	stopOnce sync.Once
}

// NewStreamer creates an instance of a Streamer sending frameRate frames per second.
func NewStreamer(animation Animation, sink Sink, frameRate float64) *Streamer {
	s := new(Streamer)
	s.animation = animation
	s.sink = sink
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.done = make(chan struct{})
	return s
}

// SendFrame calculates the frame at runtimeMs and sends it to the sink.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	s.mu.Lock()
	s.last = f
	s.mu.Unlock()
	return s.sink.SendFrame(f)
}

// LastFrame returns the most recently sent frame, or nil before the first one.
func (s *Streamer) LastFrame() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Run causes the Streamer to send Frames continuously until Stop is called or the
// sink closes.
func (s *Streamer) Run() error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()
	start := time.Now()
	for {
		select {
		case <-s.done:
			return nil
		case <-publishTimer.C:
			err := s.SendFrame(time.Since(start).Milliseconds())
			if errors.Is(err, ErrSinkClosed) {
				return nil
			}
			if err != nil {
				log.Printf("Failed to send frame: %v", err)
			}
		}
	}
}

// Stop ends Run.
func (s *Streamer) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
