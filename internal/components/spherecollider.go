package components

import (
	"handmade/internal/bound"
	"handmade/internal/engine"
	"handmade/internal/vector"
)

// SphereCollider is a circle; its radius grows with the owner's larger
// scale component.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset vector.Vector2D[float32]
	sphere *bound.Sphere2D
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		sphere: bound.NewSphere2D(),
	}
}

func (s *SphereCollider) Bound() bound.Bound { return s.sphere }

func (s *SphereCollider) Sphere() *bound.Sphere2D { return s.sphere }

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() vector.Vector2D[float32] {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return g.WorldPosition().Add(s.Offset)
}

func (s *SphereCollider) Start() { s.SyncBound() }

func (s *SphereCollider) Update(deltaTime float32) { s.SyncBound() }

func (s *SphereCollider) SyncBound() {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	center := s.GetCenter()
	scale := g.WorldScale().Abs()
	s.sphere.SetPosition(center.X, center.Y)
	s.sphere.SetRadius(s.Radius * max(scale.X, scale.Y))
	s.sphere.Update()
}
