// Package bound implements the 2D bounding volumes used for collision
// detection: axis-aligned boxes, oriented boxes, planes and spheres.
//
// A host object writes position, scale and rotation into its bound, calls
// Update to recompute the derived world-space geometry, and only then runs
// collision queries. Queries read the state produced by the most recent
// Update; nothing is recomputed lazily.
//
// Every pairing of bound kinds is covered by Collide, which dispatches to
// one free function per pair so the separating-axis code for boxes exists
// exactly once.
package bound

import (
	"fmt"
	"image/color"

	"handmade/internal/vector"
)

// Kind tags the concrete bound type for collision dispatch.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindAABB
	KindOBB

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindAABB:
		return "aabb"
	case KindOBB:
		return "obb"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Bound is implemented only by the four volumes in this package.
type Bound interface {
	Kind() Kind
	Position() vector.Vector2D[float32]
	SetPosition(x, y float32)
	Color() color.RGBA
	// Update recomputes derived geometry from the current inputs.
	Update()
	// Draw renders debug geometry. A nil Drawer draws nothing.
	Draw(d Drawer)

	isBound()
}

// Drawer is the debug-draw service. Coordinates are world units; spacing is
// the multiplier the implementation applies to them before rasterizing.
type Drawer interface {
	DrawLine(x1, y1, z1, x2, y2, z2, thickness float32, c color.RGBA, spacing float32)
	DrawBox(minX, minY, maxX, maxY, thickness float32, c color.RGBA, spacing float32)
	DrawCircle(x, y, radius, thickness float32, c color.RGBA, spacing float32)
}

// Base holds the state every bound shares.
type Base struct {
	position vector.Vector2D[float32]
	color    color.RGBA
}

func newBase(c color.RGBA) Base {
	return Base{color: c}
}

func (b *Base) Position() vector.Vector2D[float32] { return b.position }

func (b *Base) SetPosition(x, y float32) {
	b.position = vector.New(x, y)
}

func (b *Base) Color() color.RGBA { return b.color }

func (b *Base) SetColor(c color.RGBA) { b.color = c }

// TransformOrder states how the owning object composes its transform,
// which decides whether a box position lives on the scaled axis.
type TransformOrder int

const (
	// TranslateThenScale: the position is already in world space.
	TranslateThenScale TransformOrder = iota
	// ScaleThenTranslate: the position is in scaled local space and is
	// multiplied by scale to reach world space.
	ScaleThenTranslate
)

func (o TransformOrder) String() string {
	switch o {
	case TranslateThenScale:
		return "translate_then_scale"
	case ScaleThenTranslate:
		return "scale_then_translate"
	default:
		return fmt.Sprintf("TransformOrder(%d)", int(o))
	}
}

// ParseTransformOrder accepts the names produced by TransformOrder.String.
func ParseTransformOrder(s string) (TransformOrder, error) {
	switch s {
	case "", "translate_then_scale":
		return TranslateThenScale, nil
	case "scale_then_translate":
		return ScaleThenTranslate, nil
	default:
		return 0, fmt.Errorf("unknown transform order %q", s)
	}
}

// worldCenter maps a box position into world space for the given order.
func worldCenter(position, scale vector.Vector2D[float32], order TransformOrder) vector.Vector2D[float32] {
	if order == ScaleThenTranslate {
		return position.Scale(scale)
	}
	return position
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
