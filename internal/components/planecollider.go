package components

import (
	"handmade/internal/bound"
	"handmade/internal/engine"
)

// PlaneCollider is an infinite line through the owner's position. Angle is
// added to the owner's world rotation.
type PlaneCollider struct {
	engine.BaseComponent
	Angle float32
	plane *bound.Plane2D
}

func NewPlaneCollider(angle float32) *PlaneCollider {
	return &PlaneCollider{
		Angle: angle,
		plane: bound.NewPlane2D(),
	}
}

func (p *PlaneCollider) Bound() bound.Bound { return p.plane }

func (p *PlaneCollider) Plane() *bound.Plane2D { return p.plane }

func (p *PlaneCollider) SetTolerance(tol float32) { p.plane.SetTolerance(tol) }

func (p *PlaneCollider) Start() { p.SyncBound() }

func (p *PlaneCollider) Update(deltaTime float32) { p.SyncBound() }

func (p *PlaneCollider) SyncBound() {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	pos := g.WorldPosition()
	p.plane.SetPosition(pos.X, pos.Y)
	p.plane.SetAngle(g.WorldRotation() + p.Angle)
	p.plane.Update()
}
