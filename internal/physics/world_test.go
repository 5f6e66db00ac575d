package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handmade/internal/components"
	"handmade/internal/engine"
	"handmade/internal/vector"
)

type recorder struct {
	engine.BaseComponent
	events []string
}

func (r *recorder) OnCollisionEnter(other *engine.GameObject) {
	r.events = append(r.events, "enter:"+other.Name)
}

func (r *recorder) OnCollisionExit(other *engine.GameObject) {
	r.events = append(r.events, "exit:"+other.Name)
}

func newObject(name string, x, y float32, c engine.Component) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = vector.New(x, y)
	g.AddComponent(c)
	return g
}

func TestEnterAndExitCallbacks(t *testing.T) {
	w := NewWorld(2, nil)

	a := newObject("a", 0, 0, components.NewBoxCollider(2, 2))
	rec := &recorder{}
	a.AddComponent(rec)
	b := newObject("b", 1.5, 0, components.NewSphereCollider(1))
	require.True(t, w.AddObject(a))
	require.True(t, w.AddObject(b))

	var started, ended []CollisionPair
	w.CollisionStarted.AddListener(func(p CollisionPair) { started = append(started, p) })
	w.CollisionEnded.AddListener(func(p CollisionPair) { ended = append(ended, p) })

	w.Step()
	assert.True(t, w.IsColliding(a, b))
	assert.True(t, w.IsColliding(b, a))
	assert.Equal(t, []string{"enter:b"}, rec.events)

	// Still touching: no new callbacks.
	w.Step()
	assert.Equal(t, []string{"enter:b"}, rec.events)

	b.Transform.Position = vector.New[float32](10, 0)
	w.Step()
	assert.False(t, w.IsColliding(a, b))
	assert.Equal(t, []string{"enter:b", "exit:b"}, rec.events)

	require.Len(t, started, 1)
	require.Len(t, ended, 1)
	assert.Equal(t, makePair(a, b), started[0])
	assert.Same(t, a, started[0].A, "lower UID first")
}

func TestObjectWithoutColliderIgnored(t *testing.T) {
	w := NewWorld(0, nil)
	assert.Equal(t, float32(DefaultCellSize), w.CellSize())
	assert.False(t, w.AddObject(engine.NewGameObject("empty")))
	w.Step()
	assert.Equal(t, 0, w.Stats().Colliders)
}

func TestPlanesHitEverythingTheyCross(t *testing.T) {
	w := NewWorld(1, nil)
	floor := newObject("floor", 0, 0, components.NewPlaneCollider(0))
	near := newObject("near", 500, 0.5, components.NewSphereCollider(1))
	far := newObject("far", -500, 5, components.NewSphereCollider(1))
	for _, g := range []*engine.GameObject{floor, near, far} {
		w.AddObject(g)
	}

	w.Step()

	assert.True(t, w.IsColliding(floor, near))
	assert.False(t, w.IsColliding(floor, far))
	assert.Equal(t, 1, w.Stats().Unbucketed)
}

func TestOversizedBoundSkipsGrid(t *testing.T) {
	w := NewWorld(0.5, nil)
	huge := newObject("huge", 0, 0, components.NewBoxCollider(1000, 1000))
	small := newObject("small", 300, -300, components.NewSphereCollider(0.1))
	w.AddObject(huge)
	w.AddObject(small)

	w.Step()

	assert.True(t, w.IsColliding(huge, small))
	assert.Equal(t, 1, w.Stats().Unbucketed)
}

func TestBoundsSpanningCells(t *testing.T) {
	// Centres are several cells apart but the boxes overlap.
	w := NewWorld(1, nil)
	a := newObject("a", 0, 0, components.NewBoxCollider(6, 1))
	b := newObject("b", 5.5, 0, components.NewBoxCollider(6, 1))
	w.AddObject(a)
	w.AddObject(b)

	w.Step()
	assert.True(t, w.IsColliding(a, b))
}

func TestInactiveObjectsSkipped(t *testing.T) {
	w := NewWorld(2, nil)
	a := newObject("a", 0, 0, components.NewSphereCollider(1))
	b := newObject("b", 0.5, 0, components.NewSphereCollider(1))
	w.AddObject(a)
	w.AddObject(b)

	w.Step()
	require.True(t, w.IsColliding(a, b))

	b.Active = false
	w.Step()
	assert.False(t, w.IsColliding(a, b))
	assert.Len(t, w.Colliders(), 1)
}

func TestRemoveObjectEndsContacts(t *testing.T) {
	w := NewWorld(2, nil)
	rec := &recorder{}
	a := newObject("a", 0, 0, components.NewSphereCollider(1))
	a.AddComponent(rec)
	b := newObject("b", 0.5, 0, components.NewSphereCollider(1))
	w.AddObject(a)
	w.AddObject(b)
	w.Step()

	w.RemoveObject(b)

	assert.Equal(t, []string{"enter:b", "exit:b"}, rec.events)
	assert.Empty(t, w.Pairs())
	w.Step()
	assert.Equal(t, 1, w.Stats().Colliders)
}

func TestMultipleCollidersOnePair(t *testing.T) {
	w := NewWorld(2, nil)
	a := newObject("a", 0, 0, components.NewSphereCollider(1))
	a.AddComponent(components.NewBoxCollider(2, 2))
	b := newObject("b", 0.5, 0, components.NewSphereCollider(1))
	w.AddObject(a)
	w.AddObject(b)

	w.Step()
	assert.Len(t, w.Pairs(), 1)
	assert.Equal(t, 3, w.Stats().Colliders)
}

func TestGridMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	grid := NewWorld(3, nil)
	naive := NewWorld(3, nil)
	naive.SetBroadPhase(BroadPhaseNaive)

	for i := 0; i < 150; i++ {
		x, y := r.Float32()*60-30, r.Float32()*60-30
		var c func() engine.Component
		switch i % 4 {
		case 0:
			radius := r.Float32() * 2
			c = func() engine.Component { return components.NewSphereCollider(radius) }
		case 1:
			w, h := r.Float32()*4, r.Float32()*4
			c = func() engine.Component { return components.NewBoxCollider(w, h) }
		case 2:
			w, h := r.Float32()*4, r.Float32()*4
			c = func() engine.Component { return components.NewOrientedBoxCollider(w, h) }
		default:
			angle := r.Float32() * 360
			c = func() engine.Component { return components.NewPlaneCollider(angle) }
		}
		rot := r.Float32() * 360

		g1 := newObject("g", x, y, c())
		g1.Transform.Rotation = rot
		g2 := newObject("n", x, y, c())
		g2.Transform.Rotation = rot
		grid.AddObject(g1)
		naive.AddObject(g2)
	}

	grid.Step()
	naive.Step()

	gp, np := grid.Pairs(), naive.Pairs()
	require.Equal(t, len(np), len(gp))
	// Objects were created in lockstep so UIDs differ by a fixed offset.
	for i := range gp {
		assert.Equal(t, gp[i].A.UID+1, np[i].A.UID)
		assert.Equal(t, gp[i].B.UID+1, np[i].B.UID)
	}
	assert.Less(t, grid.Stats().Candidates, naive.Stats().Candidates)
}

func TestPairsSortedAndRefs(t *testing.T) {
	w := NewWorld(2, nil)
	objs := []*engine.GameObject{
		newObject("a", 0, 0, components.NewSphereCollider(1)),
		newObject("b", 0.5, 0, components.NewSphereCollider(1)),
		newObject("c", 1, 0, components.NewSphereCollider(1)),
	}
	for _, g := range objs {
		w.AddObject(g)
	}
	w.Step()

	pairs := w.Pairs()
	require.Len(t, pairs, 3)
	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		assert.True(t, prev.A.UID < cur.A.UID || (prev.A.UID == cur.A.UID && prev.B.UID < cur.B.UID))
	}

	ra, rb := pairs[0].Refs()
	assert.Equal(t, objs[0].UID, ra.UID)
	assert.Equal(t, objs[1].UID, rb.UID)
}

func TestPosToCellFloors(t *testing.T) {
	assert.Equal(t, CellKey{0, 0}, posToCell(0.5, 0.5, 1))
	assert.Equal(t, CellKey{-1, -1}, posToCell(-0.5, -0.5, 1))
	assert.Equal(t, CellKey{2, -3}, posToCell(4.1, -5.9, 2))
}

func TestCellCountClampsHugeSpans(t *testing.T) {
	assert.Equal(t, 1, cellCount(CellKey{3, 3}, CellKey{3, 3}))
	assert.Equal(t, 6, cellCount(CellKey{-1, 0}, CellKey{1, 1}))

	// Multiplying these spans directly overflows int.
	huge := cellCount(CellKey{}, CellKey{X: math.MaxInt32, Y: math.MaxInt32})
	assert.Greater(t, huge, maxCellsPerEntry)
	assert.Greater(t, cellCount(CellKey{X: math.MinInt / 2}, CellKey{X: math.MaxInt / 2}), maxCellsPerEntry)
	assert.Greater(t, cellCount(CellKey{}, CellKey{X: 2000}), maxCellsPerEntry, "long thin spans are capped too")
}
