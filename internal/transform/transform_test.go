package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"handmade/internal/vector"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got vector.Vector2D[float32]) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
}

func TestZeroValueIsIdentity(t *testing.T) {
	var tr Transform
	v := vector.New[float32](3, -2)
	assertVec(t, v, tr.ApplyVector(v))
	assertVec(t, v, tr.ApplyPoint(v))
	assert.Equal(t, Identity().Matrix(), tr.Matrix())
}

func TestRotateRightAxis(t *testing.T) {
	right := vector.Right[float32]()

	assertVec(t, vector.New[float32](0, 1), NewRotation(90).ApplyVector(right))
	assertVec(t, vector.New[float32](-1, 0), NewRotation(180).ApplyVector(right))
	assertVec(t, vector.New[float32](0.70710678, 0.70710678), NewRotation(45).ApplyVector(right))
}

func TestRotationAccumulates(t *testing.T) {
	tr := Identity().Rotate(30).Rotate(60)
	assert.InDelta(t, 90, tr.Angle(), eps)
	assertVec(t, vector.New[float32](0, 1), tr.ApplyVector(vector.Right[float32]()))
}

func TestApplyVectorPreservesLength(t *testing.T) {
	v := vector.New[float32](3, 4)
	for _, deg := range []float32{0, 17, 45, 90, 133, 270, -60} {
		got := NewRotation(deg).ApplyVector(v)
		assert.InDelta(t, 5, got.Length(), eps, "rotation %v", deg)
	}
}

func TestTranslateAffectsPointsOnly(t *testing.T) {
	tr := Identity().Translate(10, 5)
	v := vector.New[float32](1, 1)

	assertVec(t, vector.New[float32](11, 6), tr.ApplyPoint(v))
	assertVec(t, v, tr.ApplyVector(v))
	assertVec(t, vector.New[float32](10, 5), tr.Translation())
}

func TestTranslateThenRotateOrder(t *testing.T) {
	// Translation is applied in the rotated frame when rotation comes first.
	tr := Identity().Rotate(90).Translate(1, 0)
	assertVec(t, vector.New[float32](0, 1), tr.ApplyPoint(vector.Zero[float32]()))

	tr = Identity().Translate(1, 0).Rotate(90)
	assertVec(t, vector.New[float32](1, 0), tr.ApplyPoint(vector.Zero[float32]()))
}

func TestMul(t *testing.T) {
	a := NewRotation(30)
	b := NewRotation(15)
	ab := a.Mul(b)

	assert.InDelta(t, 45, ab.Angle(), eps)
	assertVec(t, NewRotation(45).ApplyVector(vector.Right[float32]()), ab.ApplyVector(vector.Right[float32]()))
}
