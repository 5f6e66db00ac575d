// Package debugdraw maps bound outlines from world units to window pixels.
// Raylib output lives in the rldraw subpackage.
package debugdraw

import (
	"image/color"

	"handmade/internal/bound"
	"handmade/internal/vector"
)

// View maps world units to window pixels. World Y points up and the window's
// Y points down, so Y is mirrored around Origin.
type View struct {
	PixelsPerUnit float32
	// Origin is the pixel where world (0, 0) is drawn.
	Origin vector.Vector2D[float32]
}

// NewView centres world (0, 0) in a width x height window.
func NewView(width, height, pixelsPerUnit int) View {
	return View{
		PixelsPerUnit: float32(pixelsPerUnit),
		Origin:        vector.New(float32(width)/2, float32(height)/2),
	}
}

// ToScreen converts a world point. spacing multiplies the pixel scale.
func (v View) ToScreen(x, y, spacing float32) vector.Vector2D[float32] {
	s := v.Scale(spacing)
	return vector.New(v.Origin.X+x*s, v.Origin.Y-y*s)
}

// ToWorld is the inverse of ToScreen with a spacing of 1.
func (v View) ToWorld(p vector.Vector2D[float32]) vector.Vector2D[float32] {
	s := v.Scale(1)
	return vector.New((p.X-v.Origin.X)/s, (v.Origin.Y-p.Y)/s)
}

// Scale is pixels per world unit after applying spacing. Non-positive
// values fall back to 1.
func (v View) Scale(spacing float32) float32 {
	ppu := v.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	if spacing <= 0 {
		spacing = 1
	}
	return ppu * spacing
}

// Rect converts a world box to a pixel rectangle as x, y, width, height
// with (x, y) the top-left corner.
func (v View) Rect(minX, minY, maxX, maxY, spacing float32) (x, y, w, h float32) {
	topLeft := v.ToScreen(minX, maxY, spacing)
	bottomRight := v.ToScreen(maxX, minY, spacing)
	return topLeft.X, topLeft.Y, bottomRight.X - topLeft.X, bottomRight.Y - topLeft.Y
}

// Nop discards every call.
type Nop struct{}

var _ bound.Drawer = Nop{}

func (Nop) DrawLine(_, _, _, _, _, _, _ float32, _ color.RGBA, _ float32) {}

func (Nop) DrawBox(_, _, _, _, _ float32, _ color.RGBA, _ float32) {}

func (Nop) DrawCircle(_, _, _, _ float32, _ color.RGBA, _ float32) {}

// Counter tallies calls per shape, for headless runs.
type Counter struct {
	Lines   int
	Boxes   int
	Circles int
}

var _ bound.Drawer = (*Counter)(nil)

func (c *Counter) DrawLine(_, _, _, _, _, _, _ float32, _ color.RGBA, _ float32) { c.Lines++ }

func (c *Counter) DrawBox(_, _, _, _, _ float32, _ color.RGBA, _ float32) { c.Boxes++ }

func (c *Counter) DrawCircle(_, _, _, _ float32, _ color.RGBA, _ float32) { c.Circles++ }

func (c *Counter) Total() int { return c.Lines + c.Boxes + c.Circles }
