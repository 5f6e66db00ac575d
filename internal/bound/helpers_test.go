package bound

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"handmade/internal/vector"
)

const eps = 1e-4

func makeAABB(x, y, w, h float32) *AABB2D {
	a := NewAABB2D()
	a.SetPosition(x, y)
	a.SetDimension(w, h)
	a.Update()
	return a
}

func makeOBB(x, y, w, h, degrees float32) *OBB2D {
	o := NewOBB2D()
	o.SetPosition(x, y)
	o.SetDimension(w, h)
	o.SetAngle(degrees)
	o.Update()
	return o
}

func makeSphere(x, y, r float32) *Sphere2D {
	s := NewSphere2D()
	s.SetPosition(x, y)
	s.SetRadius(r)
	s.Update()
	return s
}

func makePlane(x, y, degrees float32) *Plane2D {
	p := NewPlane2D()
	p.SetPosition(x, y)
	p.SetAngle(degrees)
	p.Update()
	return p
}

func assertVecNear(t *testing.T, want, got vector.Vector2D[float32], msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

type drawCall struct {
	shape     string
	coords    []float32
	thickness float32
	color     color.RGBA
	spacing   float32
}

// recordingDrawer captures draw calls instead of rasterizing them.
type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) DrawLine(x1, y1, z1, x2, y2, z2, thickness float32, c color.RGBA, spacing float32) {
	r.calls = append(r.calls, drawCall{"line", []float32{x1, y1, z1, x2, y2, z2}, thickness, c, spacing})
}

func (r *recordingDrawer) DrawBox(minX, minY, maxX, maxY, thickness float32, c color.RGBA, spacing float32) {
	r.calls = append(r.calls, drawCall{"box", []float32{minX, minY, maxX, maxY}, thickness, c, spacing})
}

func (r *recordingDrawer) DrawCircle(x, y, radius, thickness float32, c color.RGBA, spacing float32) {
	r.calls = append(r.calls, drawCall{"circle", []float32{x, y, radius}, thickness, c, spacing})
}
