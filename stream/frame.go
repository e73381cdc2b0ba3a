package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance of numPixels black pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

func (f *Frame) Len() int { return len(f.pixels) }

func (f *Frame) Pixel(i int) colorful.Color { return f.pixels[i] }

func (f *Frame) Set(i int, c colorful.Color) { f.pixels[i] = c }

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// InterpolateFrame merges two frames.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	n := len(f.pixels)
	if len(f2.pixels) < n {
		n = len(f2.pixels)
	}
	out := NewFrame(n)
	for i := 0; i < n; i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

// Hex returns the clamped pixels as hex colour strings.
func (f *Frame) Hex() []string {
	out := make([]string, len(f.pixels))
	for i, p := range f.pixels {
		out[i] = p.Clamped().Hex()
	}
	return out
}
