package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New[float32](1, 2)
	b := New[float32](3, -4)

	assert.Equal(t, New[float32](4, -2), a.Add(b))
	assert.Equal(t, New[float32](-2, 6), a.Sub(b))
	assert.Equal(t, New[float32](2, 4), a.Mul(2))
	assert.Equal(t, New[float32](0.5, 1), a.Div(2))
	assert.Equal(t, New[float32](3, -8), a.Scale(b))
	assert.Equal(t, New[float32](-1, -2), a.Negate())
	assert.Equal(t, New[float32](3, 4), b.Abs())
	assert.Equal(t, New(2, 0), New(-2, 0).Abs())
	assert.Equal(t, float32(-5), a.Dot(b))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, Vector2D[int]{}, Zero[int]())
	assert.Equal(t, New[float32](1, 0), Right[float32]())
	assert.Equal(t, New[float32](0, 1), Up[float32]())
	assert.Equal(t, float32(0), Right[float32]().Dot(Up[float32]()))
}

func TestLengthAndNormalize(t *testing.T) {
	v := New[float64](3, 4)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.LengthSquared())

	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	assert.Equal(t, Zero[float64](), Zero[float64]().Normalize())
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, New[float32](0, 0).Distance(New[float32](1, 1)), 1e-6)
}

func TestPerpendicular(t *testing.T) {
	v := New[float32](2, 1)
	p := v.Perpendicular()
	assert.Equal(t, New[float32](-1, 2), p)
	assert.Equal(t, float32(0), v.Dot(p))
}

func TestClampMinMax(t *testing.T) {
	lo := New[float32](-1, -1)
	hi := New[float32](1, 1)

	assert.Equal(t, New[float32](1, -1), New[float32](5, -3).Clamp(lo, hi))
	assert.Equal(t, New[float32](0.5, 0.25), New[float32](0.5, 0.25).Clamp(lo, hi))
	assert.Equal(t, New[float32](-1, 1), New[float32](-1, 3).Min(New[float32](2, 1)))
	assert.Equal(t, New[float32](2, 3), New[float32](-1, 3).Max(New[float32](2, 1)))
}

func TestConvert(t *testing.T) {
	screen := New(1280, 720)
	f := Convert[float32](screen)
	assert.Equal(t, New[float32](1280, 720), f)

	back := Convert[int](New[float32](2.9, -1.9))
	assert.Equal(t, New(2, -1), back)
}

func TestIntegerVectors(t *testing.T) {
	a := New(3, 4)
	assert.Equal(t, 25, a.LengthSquared())
	assert.Equal(t, 5.0, a.Length())
	assert.True(t, a.Equal(New(3, 4)))
	assert.Equal(t, "(3, 4)", a.String())
}
