package physics

import (
	"math"

	"handmade/internal/bound"
	"handmade/internal/vector"
)

// maxCellsPerEntry caps how many grid cells one bound may occupy. Larger
// bounds skip the grid and are tested against everything, like planes.
const maxCellsPerEntry = 1024

// CellKey identifies one square of the spatial hash.
type CellKey struct {
	X, Y int
}

func posToCell(x, y, cellSize float32) CellKey {
	return CellKey{
		X: int(math.Floor(float64(x / cellSize))),
		Y: int(math.Floor(float64(y / cellSize))),
	}
}

// extent returns the axis-aligned rectangle enclosing b. Planes have none.
func extent(b bound.Bound) (lo, hi vector.Vector2D[float32], ok bool) {
	switch v := b.(type) {
	case *bound.Sphere2D:
		r := vector.New(v.Radius(), v.Radius())
		return v.Position().Sub(r), v.Position().Add(r), true
	case *bound.AABB2D:
		return v.Min(), v.Max(), true
	case *bound.OBB2D:
		corners := v.Corners()
		lo, hi = corners[0], corners[0]
		for _, c := range corners[1:] {
			lo, hi = lo.Min(c), hi.Max(c)
		}
		return lo, hi, true
	default:
		return lo, hi, false
	}
}

// cellRange returns the inclusive cell rectangle covered by [lo, hi].
func cellRange(lo, hi vector.Vector2D[float32], cellSize float32) (CellKey, CellKey) {
	return posToCell(lo.X, lo.Y, cellSize), posToCell(hi.X, hi.Y, cellSize)
}

// cellCount is the number of cells in the range, clamped to
// maxCellsPerEntry+1 so huge or wrapped spans never overflow the product.
func cellCount(from, to CellKey) int {
	dx := to.X - from.X + 1
	dy := to.Y - from.Y + 1
	if dx <= 0 || dy <= 0 || dx > maxCellsPerEntry || dy > maxCellsPerEntry {
		return maxCellsPerEntry + 1
	}
	return min(dx*dy, maxCellsPerEntry+1)
}
