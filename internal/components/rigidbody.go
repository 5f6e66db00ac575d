package components

import (
	"handmade/internal/engine"
	"handmade/internal/vector"
)

// Rigidbody moves its owner at a constant linear and angular velocity.
// There is no collision response; contacts are only reported.
type Rigidbody struct {
	engine.BaseComponent
	Velocity        vector.Vector2D[float32]
	AngularVelocity float32 // degrees per second
	IsKinematic     bool    // frozen when true
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{}
}

func (r *Rigidbody) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.IsKinematic {
		return
	}
	g.Transform.Position = g.Transform.Position.Add(r.Velocity.Mul(deltaTime))
	g.Transform.Rotation += r.AngularVelocity * deltaTime
}
