package tween

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies the type of value a plugin interpolates.
type Kind int

const (
	KindFloat Kind = iota
	KindVector2
	KindVector3
	KindVector4
	KindColour
)

var kindNames = [...]string{
	KindFloat:   "Float",
	KindVector2: "Vector2",
	KindVector3: "Vector3",
	KindVector4: "Vector4",
	KindColour:  "Colour",
}

var kindLens = [...]int{
	KindFloat:   1,
	KindVector2: 2,
	KindVector3: 3,
	KindVector4: 4,
	KindColour:  3,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Len returns the number of float components carried by values of this kind.
func (k Kind) Len() int {
	if k < 0 || int(k) >= len(kindLens) {
		return 0
	}
	return kindLens[k]
}

// A Value is an animatable value of one of the supported kinds.
// Colours are stored as their R, G and B components.
type Value struct {
	kind Kind
	c    [4]float64
}

// Float creates a scalar Value.
func Float(v float64) Value {
	return Value{kind: KindFloat, c: [4]float64{v}}
}

// Vec2 creates a 2 component vector Value.
func Vec2(x, y float64) Value {
	return Value{kind: KindVector2, c: [4]float64{x, y}}
}

// Vec3 creates a 3 component vector Value.
func Vec3(x, y, z float64) Value {
	return Value{kind: KindVector3, c: [4]float64{x, y, z}}
}

// Vec4 creates a 4 component vector Value.
func Vec4(x, y, z, w float64) Value {
	return Value{kind: KindVector4, c: [4]float64{x, y, z, w}}
}

// Colour creates a colour Value.
func Colour(c colorful.Color) Value {
	return Value{kind: KindColour, c: [4]float64{c.R, c.G, c.B}}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Len() int { return v.kind.Len() }

// Component returns the i'th float component.
func (v Value) Component(i int) float64 { return v.c[i] }

func (v Value) AsFloat() float64 { return v.c[0] }

func (v Value) AsVector2() [2]float64 { return [2]float64{v.c[0], v.c[1]} }

func (v Value) AsVector3() [3]float64 { return [3]float64{v.c[0], v.c[1], v.c[2]} }

func (v Value) AsVector4() [4]float64 { return v.c }

func (v Value) AsColour() colorful.Color {
	return colorful.Color{R: v.c[0], G: v.c[1], B: v.c[2]}
}

// Add returns the component-wise sum of two values of the same kind.
func (v Value) Add(o Value) Value {
	out := Value{kind: v.kind}
	for i := 0; i < v.Len(); i++ {
		out.c[i] = v.c[i] + o.c[i]
	}
	return out
}

// Sub returns the component-wise difference of two values of the same kind.
func (v Value) Sub(o Value) Value {
	out := Value{kind: v.kind}
	for i := 0; i < v.Len(); i++ {
		out.c[i] = v.c[i] - o.c[i]
	}
	return out
}

// Magnitude returns the Euclidean norm, which for scalars is the absolute value.
func (v Value) Magnitude() float64 {
	sum := 0.0
	for i := 0; i < v.Len(); i++ {
		sum += v.c[i] * v.c[i]
	}
	return math.Sqrt(sum)
}

func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return fmt.Sprintf("%g", v.c[0])
	case KindColour:
		return v.AsColour().Hex()
	default:
		return fmt.Sprintf("%v", v.c[:v.Len()])
	}
}

func checkKind(want Kind, v Value) error {
	if v.kind != want {
		return fmt.Errorf("%w: plugin handles %s, got %s", ErrTypeMismatch, want, v.kind)
	}
	return nil
}
