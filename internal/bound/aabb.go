package bound

import "handmade/internal/vector"

// AABB2D is a box whose edges stay parallel to the world axes.
//
// Scale mirrors the owning object's scale and always applies to the
// dimension. Whether it also applies to the position depends on the
// TransformOrder; the default assumes the owner translates before scaling.
// Owners that rotate should use an OBB2D instead.
type AABB2D struct {
	Base
	scale     vector.Vector2D[float32]
	dimension vector.Vector2D[float32]
	order     TransformOrder

	center        vector.Vector2D[float32]
	halfDimension vector.Vector2D[float32]
	min           vector.Vector2D[float32]
	max           vector.Vector2D[float32]
}

// NewAABB2D returns a unit box at the origin with unit scale.
func NewAABB2D() *AABB2D {
	a := &AABB2D{
		Base:      newBase(defaultAABBColor),
		scale:     vector.New[float32](1, 1),
		dimension: vector.New[float32](1, 1),
	}
	a.Update()
	return a
}

func (a *AABB2D) Kind() Kind { return KindAABB }

func (a *AABB2D) isBound() {}

func (a *AABB2D) GetScale() vector.Vector2D[float32] { return a.scale }

func (a *AABB2D) GetDimension() vector.Vector2D[float32] { return a.dimension }

// SetScale expects non-negative components.
func (a *AABB2D) SetScale(x, y float32) {
	assertf(x >= 0 && y >= 0, "negative aabb scale (%v, %v)", x, y)
	a.scale = vector.New(x, y)
}

// SetDimension expects non-negative width and height.
func (a *AABB2D) SetDimension(width, height float32) {
	assertf(width >= 0 && height >= 0, "negative aabb dimension (%v, %v)", width, height)
	a.dimension = vector.New(width, height)
}

func (a *AABB2D) TransformOrder() TransformOrder { return a.order }

func (a *AABB2D) SetTransformOrder(order TransformOrder) { a.order = order }

// Center is the world-space centre computed by the last Update.
func (a *AABB2D) Center() vector.Vector2D[float32] { return a.center }

func (a *AABB2D) HalfDimension() vector.Vector2D[float32] { return a.halfDimension }

func (a *AABB2D) Min() vector.Vector2D[float32] { return a.min }

func (a *AABB2D) Max() vector.Vector2D[float32] { return a.max }

func (a *AABB2D) Update() {
	a.halfDimension = a.dimension.Scale(a.scale).Div(2)
	a.center = worldCenter(a.position, a.scale, a.order)
	a.min = a.center.Sub(a.halfDimension)
	a.max = a.center.Add(a.halfDimension)
}

func (a *AABB2D) Draw(d Drawer) {
	if d == nil {
		return
	}
	d.DrawBox(a.min.X, a.min.Y, a.max.X, a.max.Y, 2, a.color, 1)
}

// PointOnBox returns the point of the box closest to (x, y). Points inside
// the box are returned unchanged.
func (a *AABB2D) PointOnBox(x, y float32) vector.Vector2D[float32] {
	return vector.New(
		clampf(x, a.min.X, a.max.X),
		clampf(y, a.min.Y, a.max.Y),
	)
}

func (a *AABB2D) IsCollidingAABB(other *AABB2D) bool { return aabbAABB(a, other) }

func (a *AABB2D) IsCollidingSphere(other *Sphere2D) bool { return aabbSphere(a, other) }

// IsCollidingOBB defers to the oriented box so the separating-axis test
// lives in one place.
func (a *AABB2D) IsCollidingOBB(other *OBB2D) bool { return other.IsCollidingAABB(a) }

func (a *AABB2D) IsCollidingPlane(other *Plane2D) bool { return aabbPlane(a, other) }
