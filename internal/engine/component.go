package engine

import "handmade/internal/bound"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Collider is implemented by components that own a bound.
type Collider interface {
	Component
	Bound() bound.Bound
	// SyncBound copies the owner's world transform into the bound and
	// recomputes its derived geometry.
	SyncBound()
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
