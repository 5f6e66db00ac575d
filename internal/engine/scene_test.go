package engine

import (
	"testing"

	"handmade/internal/bound"
	"handmade/internal/vector"
)

// sphereComponent is a minimal Collider that tracks its owner's world
// position.
type sphereComponent struct {
	BaseComponent
	sphere *bound.Sphere2D
}

func newSphereComponent() *sphereComponent {
	return &sphereComponent{sphere: bound.NewSphere2D()}
}

func (s *sphereComponent) Bound() bound.Bound { return s.sphere }

func (s *sphereComponent) SyncBound() {
	pos := s.GetGameObject().WorldPosition()
	s.sphere.SetPosition(pos.X, pos.Y)
	s.sphere.Update()
}

func (s *sphereComponent) Start() { s.SyncBound() }

func (s *sphereComponent) Update(dt float32) { s.SyncBound() }

// buildScene adds a scaled parent with one child and an unrelated marker.
func buildScene() (*Scene, *GameObject, *GameObject, *GameObject) {
	scene := NewScene("level")

	parent := NewGameObject("platform")
	parent.Transform.Position = vector.New[float32](4, 2)
	parent.Transform.Scale = vector.New[float32](2, 2)
	parent.Tags = []string{"solid"}

	child := NewGameObject("crate")
	child.Transform.Position = vector.New[float32](1, 0.5)
	child.Tags = []string{"solid", "pickup"}
	parent.AddChild(child)

	marker := NewGameObject("spawn")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	scene.AddGameObject(marker)
	return scene, parent, child, marker
}

func TestSceneOwnsAddedObjects(t *testing.T) {
	scene, parent, child, marker := buildScene()

	for _, g := range []*GameObject{parent, child, marker} {
		if g.Scene != scene {
			t.Errorf("%s: Scene not set", g.Name)
		}
		if scene.FindByUID(g.UID) != g {
			t.Errorf("%s: not found by UID %d", g.Name, g.UID)
		}
	}
	if scene.FindByUID(0) != nil {
		t.Error("UID 0 is never handed out")
	}
}

func TestSceneLookups(t *testing.T) {
	scene, parent, child, _ := buildScene()

	if got := scene.FindByName("crate"); got != child {
		t.Errorf("FindByName(crate) = %v", got)
	}
	if got := scene.FindByName("missing"); got != nil {
		t.Errorf("FindByName(missing) = %v", got)
	}

	solid := scene.FindByTag("solid")
	if len(solid) != 2 || solid[0] != parent || solid[1] != child {
		t.Errorf("FindByTag(solid) = %v, want insertion order", solid)
	}
	if got := scene.FindByTag("pickup"); len(got) != 1 || got[0] != child {
		t.Errorf("FindByTag(pickup) = %v", got)
	}
	if got := scene.FindByTag("enemy"); len(got) != 0 {
		t.Errorf("FindByTag(enemy) = %v", got)
	}
}

func TestSceneRemoveChildKeepsParent(t *testing.T) {
	scene, parent, child, marker := buildScene()

	scene.RemoveGameObject(child)

	if len(scene.GameObjects) != 2 || scene.GameObjects[0] != parent || scene.GameObjects[1] != marker {
		t.Errorf("GameObjects after removal = %v", scene.GameObjects)
	}
	if child.Scene != nil {
		t.Error("removed object still points at the scene")
	}
	if scene.FindByName("crate") != nil || scene.FindByUID(child.UID) != nil {
		t.Error("removed object still reachable")
	}
	if scene.FindByUID(parent.UID) != parent {
		t.Error("parent lost from UID map")
	}
}

func TestSceneRemoveSubtree(t *testing.T) {
	scene, parent, child, marker := buildScene()
	grandchild := NewGameObject("coin")
	child.AddChild(grandchild)
	scene.AddGameObject(grandchild)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != marker {
		t.Errorf("GameObjects after removing subtree = %v", scene.GameObjects)
	}
	for _, g := range []*GameObject{parent, child, grandchild} {
		if scene.FindByUID(g.UID) != nil {
			t.Errorf("%s still in UID map", g.Name)
		}
		if g.Scene != nil {
			t.Errorf("%s still points at the scene", g.Name)
		}
	}
}

func TestSceneZeroValueAdd(t *testing.T) {
	var scene Scene
	g := NewGameObject("late")
	scene.AddGameObject(g)

	if scene.FindByUID(g.UID) != g {
		t.Error("zero Scene did not index the object")
	}
}

func TestSceneCollidersFollowHierarchy(t *testing.T) {
	scene, parent, child, marker := buildScene()
	parentBound := newSphereComponent()
	childBound := newSphereComponent()
	parent.AddComponent(parentBound)
	child.AddComponent(childBound)
	marker.AddComponent(&countingComponent{})

	scene.Start()

	var colliders []Collider
	for _, g := range scene.GameObjects {
		colliders = append(colliders, GetComponents[Collider](g)...)
	}
	if len(colliders) != 2 {
		t.Fatalf("expected 2 colliders, got %d", len(colliders))
	}

	// The child's local offset is scaled by the parent's scale.
	want := vector.New[float32](6, 3)
	if got := childBound.Bound().Position(); got != want {
		t.Errorf("child bound at %v, want %v", got, want)
	}

	parent.Transform.Position = vector.New[float32](0, 0)
	scene.Update(1.0 / 60)
	want = vector.New[float32](2, 1)
	if got := childBound.Bound().Position(); got != want {
		t.Errorf("child bound after move at %v, want %v", got, want)
	}
}

func TestSceneUpdateSkipsInactive(t *testing.T) {
	scene, parent, child, _ := buildScene()
	active := &countingComponent{}
	idle := &countingComponent{}
	parent.AddComponent(active)
	child.AddComponent(idle)

	scene.Start()
	scene.Start()
	child.Active = false
	scene.Update(0.5)
	scene.Update(0.5)

	if active.starts != 1 || idle.starts != 1 {
		t.Errorf("starts = %d, %d; want 1, 1", active.starts, idle.starts)
	}
	if active.updates != 2 {
		t.Errorf("active updates = %d, want 2", active.updates)
	}
	if idle.updates != 0 {
		t.Errorf("inactive updates = %d, want 0", idle.updates)
	}
}
