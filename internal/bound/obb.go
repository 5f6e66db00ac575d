package bound

import (
	"handmade/internal/transform"
	"handmade/internal/vector"
)

// OBB2D is a box that may be rotated relative to the world axes.
type OBB2D struct {
	Base
	scale     vector.Vector2D[float32]
	dimension vector.Vector2D[float32]
	order     TransformOrder
	rotation  transform.Transform

	center        vector.Vector2D[float32]
	halfDimension vector.Vector2D[float32]
	// axes are the local X and Y axes rotated into world space.
	axes [2]vector.Vector2D[float32]
	// extents are the axes scaled by the matching half dimension.
	extents [2]vector.Vector2D[float32]
}

// NewOBB2D returns an unrotated unit box at the origin with unit scale.
func NewOBB2D() *OBB2D {
	o := &OBB2D{
		Base:      newBase(defaultOBBColor),
		scale:     vector.New[float32](1, 1),
		dimension: vector.New[float32](1, 1),
		rotation:  transform.NewRotation(0),
	}
	o.Update()
	return o
}

func (o *OBB2D) Kind() Kind { return KindOBB }

func (o *OBB2D) isBound() {}

func (o *OBB2D) GetScale() vector.Vector2D[float32] { return o.scale }

func (o *OBB2D) GetDimension() vector.Vector2D[float32] { return o.dimension }

func (o *OBB2D) SetScale(x, y float32) {
	assertf(x >= 0 && y >= 0, "negative obb scale (%v, %v)", x, y)
	o.scale = vector.New(x, y)
}

func (o *OBB2D) SetDimension(width, height float32) {
	assertf(width >= 0 && height >= 0, "negative obb dimension (%v, %v)", width, height)
	o.dimension = vector.New(width, height)
}

func (o *OBB2D) TransformOrder() TransformOrder { return o.order }

func (o *OBB2D) SetTransformOrder(order TransformOrder) { o.order = order }

func (o *OBB2D) Rotation() transform.Transform { return o.rotation }

func (o *OBB2D) SetRotation(rotation transform.Transform) { o.rotation = rotation }

// SetAngle replaces the rotation with a pure rotation in degrees.
func (o *OBB2D) SetAngle(degrees float32) {
	o.rotation = transform.NewRotation(degrees)
}

func (o *OBB2D) Center() vector.Vector2D[float32] { return o.center }

func (o *OBB2D) HalfDimension() vector.Vector2D[float32] { return o.halfDimension }

// Axes returns the box's unit axes in world space.
func (o *OBB2D) Axes() [2]vector.Vector2D[float32] { return o.axes }

func (o *OBB2D) Update() {
	o.halfDimension = o.dimension.Scale(o.scale).Div(2)
	o.center = worldCenter(o.position, o.scale, o.order)

	o.axes[0] = o.rotation.ApplyVector(vector.Right[float32]()).Normalize()
	o.axes[1] = o.rotation.ApplyVector(vector.Up[float32]()).Normalize()

	o.extents[0] = o.axes[0].Mul(o.halfDimension.X)
	o.extents[1] = o.axes[1].Mul(o.halfDimension.Y)
}

// Corners returns the four corners counter-clockwise, starting bottom-left
// in the box's local frame.
func (o *OBB2D) Corners() [4]vector.Vector2D[float32] {
	c, ex, ey := o.center, o.extents[0], o.extents[1]
	return [4]vector.Vector2D[float32]{
		c.Sub(ex).Sub(ey),
		c.Add(ex).Sub(ey),
		c.Add(ex).Add(ey),
		c.Sub(ex).Add(ey),
	}
}

func (o *OBB2D) Draw(d Drawer) {
	if d == nil {
		return
	}
	corners := o.Corners()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		d.DrawLine(a.X, a.Y, 0, b.X, b.Y, 0, 2, o.color, 1)
	}
}

// ClosestPoint returns the point of the box closest to (x, y) in world space.
func (o *OBB2D) ClosestPoint(x, y float32) vector.Vector2D[float32] {
	lx, ly := o.toLocal(vector.New(x, y))
	cx := clampf(lx, -o.halfDimension.X, o.halfDimension.X)
	cy := clampf(ly, -o.halfDimension.Y, o.halfDimension.Y)
	return o.center.Add(o.axes[0].Mul(cx)).Add(o.axes[1].Mul(cy))
}

// toLocal projects a world point onto the box axes, relative to the centre.
func (o *OBB2D) toLocal(p vector.Vector2D[float32]) (float32, float32) {
	rel := p.Sub(o.center)
	return rel.Dot(o.axes[0]), rel.Dot(o.axes[1])
}

func (o *OBB2D) box() orientedBox {
	return orientedBox{center: o.center, half: o.halfDimension, axes: o.axes}
}

func (o *OBB2D) IsCollidingOBB(other *OBB2D) bool { return obbOBB(o, other) }

// IsCollidingAABB treats the axis-aligned box as an unrotated OBB rebuilt
// from its scale and dimension.
func (o *OBB2D) IsCollidingAABB(other *AABB2D) bool { return obbAABB(o, other) }

func (o *OBB2D) IsCollidingSphere(other *Sphere2D) bool { return obbSphere(o, other) }

func (o *OBB2D) IsCollidingPlane(other *Plane2D) bool { return obbPlane(o, other) }
