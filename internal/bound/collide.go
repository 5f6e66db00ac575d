package bound

import "handmade/internal/vector"

// orientedBox is the centre-extent form both box types reduce to for the
// separating-axis test.
type orientedBox struct {
	center vector.Vector2D[float32]
	half   vector.Vector2D[float32]
	axes   [2]vector.Vector2D[float32]
}

// parallelEpsilon is how far from zero the cross product of two unit
// normals may be for the lines to still count as parallel.
const parallelEpsilon = 1e-6

var worldAxes = [2]vector.Vector2D[float32]{vector.Right[float32](), vector.Up[float32]()}

// projectedRadius is the half-length of the box's shadow on axis.
func (b orientedBox) projectedRadius(axis vector.Vector2D[float32]) float32 {
	return b.half.X*absf(b.axes[0].Dot(axis)) + b.half.Y*absf(b.axes[1].Dot(axis))
}

// overlapOnAxis reports whether the two boxes' projections onto axis touch
// or overlap. t is the vector between the box centres.
func overlapOnAxis(a, b orientedBox, axis, t vector.Vector2D[float32]) bool {
	distance := absf(t.Dot(axis))
	return distance <= a.projectedRadius(axis)+b.projectedRadius(axis)
}

// boxesOverlap runs the separating-axis test. In 2D the face normals of
// both boxes are the only candidate axes, two per box.
func boxesOverlap(a, b orientedBox) bool {
	t := b.center.Sub(a.center)
	candidates := [4]vector.Vector2D[float32]{a.axes[0], a.axes[1], b.axes[0], b.axes[1]}
	for _, axis := range candidates {
		if !overlapOnAxis(a, b, axis, t) {
			return false
		}
	}
	return true
}

func sphereSphere(a, b *Sphere2D) bool {
	return a.position.Distance(b.position) <= float64(a.radius+b.radius)
}

func aabbAABB(a, b *AABB2D) bool {
	return a.min.X <= b.max.X && a.max.X >= b.min.X &&
		a.min.Y <= b.max.Y && a.max.Y >= b.min.Y
}

func aabbSphere(a *AABB2D, s *Sphere2D) bool {
	closest := a.PointOnBox(s.position.X, s.position.Y)
	return closest.Distance(s.position) <= float64(s.radius)
}

// obbAABB only reads the AABB through its public accessors.
func obbAABB(o *OBB2D, a *AABB2D) bool {
	aligned := orientedBox{
		center: a.Center(),
		half:   a.GetDimension().Scale(a.GetScale()).Div(2),
		axes:   worldAxes,
	}
	return boxesOverlap(o.box(), aligned)
}

func obbOBB(a, b *OBB2D) bool {
	return boxesOverlap(a.box(), b.box())
}

func obbSphere(o *OBB2D, s *Sphere2D) bool {
	lx, ly := o.toLocal(s.position)
	dx := lx - clampf(lx, -o.halfDimension.X, o.halfDimension.X)
	dy := ly - clampf(ly, -o.halfDimension.Y, o.halfDimension.Y)
	return vector.New(dx, dy).Length() <= float64(s.radius)
}

func planeSphere(p *Plane2D, s *Sphere2D) bool {
	return absf(p.SignedDistance(s.position.X, s.position.Y)) <= s.radius
}

func planeBox(p *Plane2D, b orientedBox) bool {
	return absf(p.SignedDistance(b.center.X, b.center.Y)) <= b.projectedRadius(p.normal)
}

func aabbPlane(a *AABB2D, p *Plane2D) bool {
	return planeBox(p, orientedBox{center: a.center, half: a.halfDimension, axes: worldAxes})
}

func obbPlane(o *OBB2D, p *Plane2D) bool {
	return planeBox(p, o.box())
}

// planePlane: two infinite lines meet unless they are parallel and apart.
func planePlane(a, b *Plane2D) bool {
	cross := a.normal.X*b.normal.Y - a.normal.Y*b.normal.X
	if absf(cross) > parallelEpsilon {
		return true
	}
	// Parallel: b's offset measured along a's normal. Rotating a normal by
	// 180 degrees leaves float32 noise, so the gap gets a relative slack.
	offset := b.distanceFromOrigin * a.normal.Dot(b.normal)
	slack := parallelEpsilon * max(1, absf(a.distanceFromOrigin), absf(offset))
	return absf(a.distanceFromOrigin-offset) <= max(a.tolerance, b.tolerance)+slack
}

type collideFunc func(a, b Bound) bool

// collisionTable is indexed by [a.Kind()][b.Kind()]. Mirrored entries swap
// their arguments so every ordered pair reaches the same free function.
var collisionTable = [kindCount][kindCount]collideFunc{
	KindSphere: {
		KindSphere: func(a, b Bound) bool { return sphereSphere(a.(*Sphere2D), b.(*Sphere2D)) },
		KindPlane:  func(a, b Bound) bool { return planeSphere(b.(*Plane2D), a.(*Sphere2D)) },
		KindAABB:   func(a, b Bound) bool { return aabbSphere(b.(*AABB2D), a.(*Sphere2D)) },
		KindOBB:    func(a, b Bound) bool { return obbSphere(b.(*OBB2D), a.(*Sphere2D)) },
	},
	KindPlane: {
		KindSphere: func(a, b Bound) bool { return planeSphere(a.(*Plane2D), b.(*Sphere2D)) },
		KindPlane:  func(a, b Bound) bool { return planePlane(a.(*Plane2D), b.(*Plane2D)) },
		KindAABB:   func(a, b Bound) bool { return aabbPlane(b.(*AABB2D), a.(*Plane2D)) },
		KindOBB:    func(a, b Bound) bool { return obbPlane(b.(*OBB2D), a.(*Plane2D)) },
	},
	KindAABB: {
		KindSphere: func(a, b Bound) bool { return aabbSphere(a.(*AABB2D), b.(*Sphere2D)) },
		KindPlane:  func(a, b Bound) bool { return aabbPlane(a.(*AABB2D), b.(*Plane2D)) },
		KindAABB:   func(a, b Bound) bool { return aabbAABB(a.(*AABB2D), b.(*AABB2D)) },
		KindOBB:    func(a, b Bound) bool { return obbAABB(b.(*OBB2D), a.(*AABB2D)) },
	},
	KindOBB: {
		KindSphere: func(a, b Bound) bool { return obbSphere(a.(*OBB2D), b.(*Sphere2D)) },
		KindPlane:  func(a, b Bound) bool { return obbPlane(a.(*OBB2D), b.(*Plane2D)) },
		KindAABB:   func(a, b Bound) bool { return obbAABB(a.(*OBB2D), b.(*AABB2D)) },
		KindOBB:    func(a, b Bound) bool { return obbOBB(a.(*OBB2D), b.(*OBB2D)) },
	},
}

// Collide reports whether two bounds intersect. Both must have been
// updated since their inputs last changed. Touching counts as colliding.
func Collide(a, b Bound) bool {
	return collisionTable[a.Kind()][b.Kind()](a, b)
}
