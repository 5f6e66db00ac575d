package engine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameObjectRef refers to a GameObject by UID, so it stays valid across
// scene edits and can be written to files. It encodes as a bare integer.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference. It returns nil for an empty reference, a nil
// scene, or an object no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is non-empty. It does not check the
// scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}

func (r GameObjectRef) MarshalYAML() (any, error) {
	return r.UID, nil
}

func (r *GameObjectRef) UnmarshalYAML(node *yaml.Node) error {
	var uid uint64
	if err := node.Decode(&uid); err != nil {
		return fmt.Errorf("object ref: %w", err)
	}
	r.UID = uid
	return nil
}
