package bound

import (
	"handmade/internal/transform"
	"handmade/internal/vector"
)

// planeExtent stretches the rendered plane far enough to look infinite.
const planeExtent = 10000

// PlaneSide classifies a point against a plane.
type PlaneSide int

const (
	OnPlane PlaneSide = iota
	PositiveSide
	NegativeSide
)

func (s PlaneSide) String() string {
	switch s {
	case PositiveSide:
		return "positive"
	case NegativeSide:
		return "negative"
	default:
		return "on_plane"
	}
}

// Plane2D is an infinite line through its position, oriented by rotation.
// The normal is the rotated right axis turned 90 degrees counter-clockwise.
type Plane2D struct {
	Base
	rotation  transform.Transform
	tolerance float32

	point1             vector.Vector2D[float32]
	point2             vector.Vector2D[float32]
	normal             vector.Vector2D[float32]
	distanceFromOrigin float32
}

func NewPlane2D() *Plane2D {
	p := &Plane2D{
		Base:     newBase(defaultPlaneColor),
		rotation: transform.NewRotation(0),
	}
	p.Update()
	return p
}

func (p *Plane2D) Kind() Kind { return KindPlane }

func (p *Plane2D) isBound() {}

func (p *Plane2D) Rotation() transform.Transform { return p.rotation }

func (p *Plane2D) SetRotation(rotation transform.Transform) {
	p.rotation = rotation
}

// SetAngle replaces the rotation with a pure rotation in degrees.
func (p *Plane2D) SetAngle(degrees float32) {
	p.rotation = transform.NewRotation(degrees)
}

// SetTolerance widens the OnPlane band of SideOfPlane to |distance| <= tol.
// The default of 0 keeps exact classification.
func (p *Plane2D) SetTolerance(tol float32) {
	assertf(tol >= 0, "negative plane tolerance %v", tol)
	p.tolerance = tol
}

func (p *Plane2D) Tolerance() float32 { return p.tolerance }

func (p *Plane2D) Normal() vector.Vector2D[float32] { return p.normal }

func (p *Plane2D) DistanceFromOrigin() float32 { return p.distanceFromOrigin }

// Endpoints returns the far-extended points used only for rendering.
func (p *Plane2D) Endpoints() (vector.Vector2D[float32], vector.Vector2D[float32]) {
	return p.point1, p.point2
}

func (p *Plane2D) Update() {
	right := p.rotation.ApplyVector(vector.Right[float32]())

	p.point1 = p.position.Sub(right.Mul(planeExtent))
	p.point2 = p.position.Add(right.Mul(planeExtent))

	p.normal = right.Perpendicular()
	p.distanceFromOrigin = p.normal.Dot(p.position)
}

func (p *Plane2D) Draw(d Drawer) {
	if d == nil {
		return
	}
	d.DrawLine(p.point1.X, p.point1.Y, 0, p.point2.X, p.point2.Y, 0, 4, p.color, 1)
}

// SignedDistance is positive on the side the normal points to.
func (p *Plane2D) SignedDistance(x, y float32) float32 {
	return p.normal.Dot(vector.New(x, y)) - p.distanceFromOrigin
}

func (p *Plane2D) SideOfPlane(x, y float32) PlaneSide {
	d := p.SignedDistance(x, y)
	switch {
	case d > p.tolerance:
		return PositiveSide
	case d < -p.tolerance:
		return NegativeSide
	default:
		return OnPlane
	}
}

func (p *Plane2D) IsCollidingSphere(other *Sphere2D) bool { return planeSphere(p, other) }

func (p *Plane2D) IsCollidingAABB(other *AABB2D) bool { return aabbPlane(other, p) }

func (p *Plane2D) IsCollidingOBB(other *OBB2D) bool { return obbPlane(other, p) }

func (p *Plane2D) IsCollidingPlane(other *Plane2D) bool { return planePlane(p, other) }
