package debugdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"handmade/internal/bound"
	"handmade/internal/vector"
)

func TestViewToScreen(t *testing.T) {
	v := NewView(800, 600, 50)
	assert.Equal(t, vector.New[float32](400, 300), v.ToScreen(0, 0, 1))
	assert.Equal(t, vector.New[float32](450, 200), v.ToScreen(1, 2, 1))
	assert.Equal(t, vector.New[float32](500, 300), v.ToScreen(1, 0, 2), "spacing multiplies the scale")
}

func TestViewRoundTrip(t *testing.T) {
	v := NewView(1024, 768, 32)
	for _, p := range []vector.Vector2D[float32]{{0, 0}, {3, -2}, {-7.5, 4.25}} {
		s := v.ToScreen(p.X, p.Y, 1)
		assert.Equal(t, p, v.ToWorld(s))
	}
}

func TestViewScaleFallback(t *testing.T) {
	assert.Equal(t, float32(1), View{}.Scale(0))
	assert.Equal(t, float32(3), View{}.Scale(3))
	assert.Equal(t, float32(10), View{PixelsPerUnit: 10}.Scale(-1))
}

func TestViewRect(t *testing.T) {
	v := NewView(200, 200, 10)
	x, y, w, h := v.Rect(-1, -2, 3, 4, 1)
	// Top edge is world y = 4, mirrored to pixel 100 - 40.
	assert.Equal(t, []float32{90, 60, 40, 60}, []float32{x, y, w, h})
}

func TestCounter(t *testing.T) {
	var c Counter
	s := bound.NewSphere2D()
	s.Draw(&c)
	a := bound.NewAABB2D()
	a.Draw(&c)
	o := bound.NewOBB2D()
	o.Draw(&c)
	p := bound.NewPlane2D()
	p.Draw(&c)

	assert.Equal(t, Counter{Lines: 5, Boxes: 1, Circles: 1}, c)
	assert.Equal(t, 7, c.Total())

	// Nop accepts the same calls.
	s.Draw(Nop{})
}
