package engine

import (
	"sync/atomic"

	"handmade/internal/transform"
	"handmade/internal/vector"
)

type Transform struct {
	Position vector.Vector2D[float32]
	Rotation float32 // degrees, counter-clockwise
	Scale    vector.Vector2D[float32]
}

var nextUID atomic.Uint64

// NewUID hands out process-unique, non-zero object IDs.
func NewUID() uint64 {
	return nextUID.Add(1)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    NewUID(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: vector.New[float32](1, 1),
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns every component of type T in insertion order.
func GetComponents[T Component](g *GameObject) []T {
	var out []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldPosition places the local position in the parent's frame: scaled by
// the parent's world scale, rotated by its world rotation, then offset.
func (g *GameObject) WorldPosition() vector.Vector2D[float32] {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	scaled := g.Transform.Position.Scale(g.Parent.WorldScale())
	rotated := transform.NewRotation(g.Parent.WorldRotation()).ApplyVector(scaled)
	return parentPos.Add(rotated)
}

func (g *GameObject) WorldRotation() float32 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation() + g.Transform.Rotation
}

func (g *GameObject) WorldScale() vector.Vector2D[float32] {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return g.Parent.WorldScale().Scale(g.Transform.Scale)
}
