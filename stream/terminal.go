package stream

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TerminalSink previews frames in a terminal, one cell per pixel, wrapping the strip
// across rows. Pressing q, Esc or Ctrl-C closes it.
type TerminalSink struct {
	screen tcell.Screen
	quit   chan struct{}
	once   sync.Once
}

// NewTerminalSink initialises the terminal screen.
func NewTerminalSink() (*TerminalSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	t := newTerminalSink(screen)
	go t.poll()
	return t, nil
}

func newTerminalSink(screen tcell.Screen) *TerminalSink {
	t := new(TerminalSink)
	t.screen = screen
	t.quit = make(chan struct{})
	screen.Clear()
	return t
}

func (t *TerminalSink) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				t.stop()
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalSink) stop() {
	t.once.Do(func() { close(t.quit) })
}

// Done is closed once the user asks to quit.
func (t *TerminalSink) Done() <-chan struct{} { return t.quit }

// SendFrame draws the frame. It returns ErrSinkClosed after the user quit.
func (t *TerminalSink) SendFrame(f *Frame) error {
	select {
	case <-t.quit:
		return ErrSinkClosed
	default:
	}

	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	for i := 0; i < f.Len() && i < width*height; i++ {
		r, g, b := f.Pixel(i).Clamped().RGB255()
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		t.screen.SetContent(i%width, i/width, ' ', nil, style)
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *TerminalSink) Close() {
	t.stop()
	t.screen.Fini()
}
