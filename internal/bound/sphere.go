package bound

// Sphere2D is a circle in 2D: a centre (the bound position) and a radius.
type Sphere2D struct {
	Base
	radius float32
}

func NewSphere2D() *Sphere2D {
	return &Sphere2D{Base: newBase(defaultSphereColor)}
}

func (s *Sphere2D) Kind() Kind { return KindSphere }

func (s *Sphere2D) isBound() {}

func (s *Sphere2D) Radius() float32 { return s.radius }

// SetRadius expects radius >= 0.
func (s *Sphere2D) SetRadius(radius float32) {
	assertf(radius >= 0, "negative sphere radius %v", radius)
	s.radius = radius
}

// Update is a no-op: a sphere has no derived geometry.
func (s *Sphere2D) Update() {}

func (s *Sphere2D) Draw(d Drawer) {
	if d == nil {
		return
	}
	d.DrawCircle(s.position.X, s.position.Y, s.radius, 2, s.color, 1)
}

func (s *Sphere2D) IsCollidingSphere(other *Sphere2D) bool { return sphereSphere(s, other) }

func (s *Sphere2D) IsCollidingAABB(other *AABB2D) bool { return aabbSphere(other, s) }

func (s *Sphere2D) IsCollidingOBB(other *OBB2D) bool { return obbSphere(other, s) }

func (s *Sphere2D) IsCollidingPlane(other *Plane2D) bool { return planeSphere(other, s) }
