package components

import (
	"handmade/internal/bound"
	"handmade/internal/engine"
	"handmade/internal/vector"
)

// BoxCollider is an axis-aligned box. It ignores the owner's rotation.
type BoxCollider struct {
	engine.BaseComponent
	Size   vector.Vector2D[float32]
	Offset vector.Vector2D[float32]
	box    *bound.AABB2D
	order  bound.TransformOrder
}

func NewBoxCollider(width, height float32) *BoxCollider {
	return &BoxCollider{
		Size: vector.New(width, height),
		box:  bound.NewAABB2D(),
	}
}

func (b *BoxCollider) Bound() bound.Bound { return b.box }

func (b *BoxCollider) AABB() *bound.AABB2D { return b.box }

// SetTransformOrder decides whether Offset is scaled along with the box.
// The box stays centred on the owner's world position either way, like
// the sphere and plane colliders.
func (b *BoxCollider) SetTransformOrder(order bound.TransformOrder) {
	b.order = order
}

func (b *BoxCollider) TransformOrder() bound.TransformOrder { return b.order }

func (b *BoxCollider) Start() { b.SyncBound() }

func (b *BoxCollider) Update(deltaTime float32) { b.SyncBound() }

func (b *BoxCollider) SyncBound() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	pos := g.WorldPosition().Add(scaledOffset(b.Offset, g, b.order))
	scale := g.WorldScale().Abs()
	b.box.SetPosition(pos.X, pos.Y)
	b.box.SetScale(scale.X, scale.Y)
	b.box.SetDimension(b.Size.X, b.Size.Y)
	b.box.Update()
}

// scaledOffset is offset in world units. Under ScaleThenTranslate it is
// scaled, and mirrored, by the owner's world scale.
func scaledOffset(offset vector.Vector2D[float32], g *engine.GameObject, order bound.TransformOrder) vector.Vector2D[float32] {
	if order == bound.ScaleThenTranslate {
		return offset.Scale(g.WorldScale())
	}
	return offset
}
