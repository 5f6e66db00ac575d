// Package world ties a scene to its physics world and reads and writes
// scene files.
package world

import (
	"go.uber.org/zap"

	"handmade/internal/bound"
	"handmade/internal/config"
	"handmade/internal/engine"
	"handmade/internal/logging"
	"handmade/internal/physics"
)

type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	collision config.Collision
	logger    *zap.Logger
}

func New(collision config.Collision, logger *zap.Logger) *World {
	logger = logging.OrNop(logger)
	return &World{
		Scene:     engine.NewScene("Main"),
		Physics:   physics.NewWorld(collision.CellSize, logger),
		collision: collision,
		logger:    logger.Named("world"),
	}
}

// orderedCollider is implemented by colliders whose box position depends on
// the transform order.
type orderedCollider interface {
	SetTransformOrder(order bound.TransformOrder)
}

type toleranceCollider interface {
	Plane() *bound.Plane2D
	SetTolerance(tol float32)
}

// AddObject adds g and its children to the scene and registers their
// colliders, applying the configured collision settings.
func (w *World) AddObject(g *engine.GameObject) {
	for _, c := range g.Components() {
		if oc, ok := c.(orderedCollider); ok {
			oc.SetTransformOrder(w.collision.Order())
		}
		if tc, ok := c.(toleranceCollider); ok {
			tc.SetTolerance(max(tc.Plane().Tolerance(), w.collision.PlaneTolerance))
		}
	}
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	for _, child := range g.Children {
		w.AddObject(child)
	}
}

// Destroy removes g and its children from the scene and the physics world.
func (w *World) Destroy(g *engine.GameObject) {
	w.removeFromPhysics(g)
	w.Scene.RemoveGameObject(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
}

func (w *World) removeFromPhysics(g *engine.GameObject) {
	for _, child := range g.Children {
		w.removeFromPhysics(child)
	}
	w.Physics.RemoveObject(g)
}

// Step starts any new objects, updates every component, then runs collision
// detection.
func (w *World) Step(deltaTime float32) {
	for _, g := range w.Scene.GameObjects {
		g.Start()
	}
	w.Scene.Update(deltaTime)
	w.Physics.Step()
}

// DrawBounds renders every active collider's bound.
func (w *World) DrawBounds(d bound.Drawer) {
	for _, c := range w.Physics.Colliders() {
		c.Bound().Draw(d)
	}
}

// Contacts returns the current collision pairs as names, for reporting.
func (w *World) Contacts() [][2]string {
	pairs := w.Physics.Pairs()
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		out[i] = [2]string{p.A.Name, p.B.Name}
	}
	return out
}
