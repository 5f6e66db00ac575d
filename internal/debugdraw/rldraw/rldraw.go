// Package rldraw draws bound outlines with raylib's 2D shape functions.
package rldraw

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"handmade/internal/bound"
	"handmade/internal/debugdraw"
	"handmade/internal/vector"
)

const circleSegments = 36

// Drawer must be used between BeginDrawing and EndDrawing.
type Drawer struct {
	View debugdraw.View
}

func New(view debugdraw.View) *Drawer {
	return &Drawer{View: view}
}

var _ bound.Drawer = (*Drawer)(nil)

func toRL(v vector.Vector2D[float32]) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}

// DrawLine ignores z; the collision world is flat.
func (d *Drawer) DrawLine(x1, y1, _, x2, y2, _, thickness float32, c color.RGBA, spacing float32) {
	rl.DrawLineEx(toRL(d.View.ToScreen(x1, y1, spacing)), toRL(d.View.ToScreen(x2, y2, spacing)), thickness, c)
}

func (d *Drawer) DrawBox(minX, minY, maxX, maxY, thickness float32, c color.RGBA, spacing float32) {
	x, y, w, h := d.View.Rect(minX, minY, maxX, maxY, spacing)
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), thickness, c)
}

func (d *Drawer) DrawCircle(x, y, radius, thickness float32, c color.RGBA, spacing float32) {
	center := toRL(d.View.ToScreen(x, y, spacing))
	outer := radius * d.View.Scale(spacing)
	inner := max(outer-thickness, 0)
	rl.DrawRing(center, inner, outer, 0, 360, circleSegments, c)
}
