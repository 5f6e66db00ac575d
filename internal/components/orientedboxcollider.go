package components

import (
	"handmade/internal/bound"
	"handmade/internal/engine"
	"handmade/internal/vector"
)

// OrientedBoxCollider is a box that turns with its owner.
type OrientedBoxCollider struct {
	engine.BaseComponent
	Size   vector.Vector2D[float32]
	Offset vector.Vector2D[float32]
	box    *bound.OBB2D
	order  bound.TransformOrder
}

func NewOrientedBoxCollider(width, height float32) *OrientedBoxCollider {
	return &OrientedBoxCollider{
		Size: vector.New(width, height),
		box:  bound.NewOBB2D(),
	}
}

func (o *OrientedBoxCollider) Bound() bound.Bound { return o.box }

func (o *OrientedBoxCollider) OBB() *bound.OBB2D { return o.box }

func (o *OrientedBoxCollider) SetTransformOrder(order bound.TransformOrder) {
	o.order = order
}

func (o *OrientedBoxCollider) TransformOrder() bound.TransformOrder { return o.order }

func (o *OrientedBoxCollider) Start() { o.SyncBound() }

func (o *OrientedBoxCollider) Update(deltaTime float32) { o.SyncBound() }

func (o *OrientedBoxCollider) SyncBound() {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	pos := g.WorldPosition().Add(scaledOffset(o.Offset, g, o.order))
	scale := g.WorldScale().Abs()
	o.box.SetPosition(pos.X, pos.Y)
	o.box.SetScale(scale.X, scale.Y)
	o.box.SetDimension(o.Size.X, o.Size.Y)
	o.box.SetAngle(g.WorldRotation())
	o.box.Update()
}
