// Package transform holds the 2D rotation/translation used to orient planes
// and oriented boxes. It is a thin layer over a homogeneous 3x3 matrix.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"handmade/internal/vector"
)

// Transform composes rotations and translations in the order they are
// applied, the same way a GL model-view matrix is built up.
// The zero value behaves as the identity.
type Transform struct {
	matrix mgl32.Mat3
	angle  float32 // accumulated rotation, degrees
}

func Identity() Transform {
	return Transform{matrix: mgl32.Ident3()}
}

// NewRotation returns a pure rotation of the given angle in degrees.
func NewRotation(degrees float32) Transform {
	return Identity().Rotate(degrees)
}

// Rotate post-multiplies a rotation of the given angle in degrees.
func (t Transform) Rotate(degrees float32) Transform {
	t.ensure()
	t.matrix = t.matrix.Mul3(mgl32.HomogRotate2D(mgl32.DegToRad(degrees)))
	t.angle += degrees
	return t
}

// Translate post-multiplies a translation.
func (t Transform) Translate(x, y float32) Transform {
	t.ensure()
	t.matrix = t.matrix.Mul3(mgl32.Translate2D(x, y))
	return t
}

// Mul returns t followed by o (t * o).
func (t Transform) Mul(o Transform) Transform {
	t.ensure()
	o.ensure()
	return Transform{
		matrix: t.matrix.Mul3(o.matrix),
		angle:  t.angle + o.angle,
	}
}

// Angle returns the accumulated rotation in degrees.
func (t Transform) Angle() float32 { return t.angle }

// Matrix returns the homogeneous matrix.
func (t Transform) Matrix() mgl32.Mat3 {
	t.ensure()
	return t.matrix
}

// Translation returns the translation column of the matrix.
func (t Transform) Translation() vector.Vector2D[float32] {
	t.ensure()
	c := t.matrix.Col(2)
	return vector.New(c.X(), c.Y())
}

// ApplyVector rotates a direction; translation is ignored.
func (t Transform) ApplyVector(v vector.Vector2D[float32]) vector.Vector2D[float32] {
	t.ensure()
	r := t.matrix.Mul3x1(mgl32.Vec3{v.X, v.Y, 0})
	return vector.New(r.X(), r.Y())
}

// ApplyPoint rotates and translates a position.
func (t Transform) ApplyPoint(v vector.Vector2D[float32]) vector.Vector2D[float32] {
	t.ensure()
	r := t.matrix.Mul3x1(mgl32.Vec3{v.X, v.Y, 1})
	return vector.New(r.X(), r.Y())
}

func (t *Transform) ensure() {
	if t.matrix == (mgl32.Mat3{}) {
		t.matrix = mgl32.Ident3()
	}
}
