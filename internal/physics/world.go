// Package physics runs collision detection over the colliders in a scene and
// reports contacts as they begin and end. It does not resolve contacts.
package physics

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"handmade/internal/bound"
	"handmade/internal/engine"
	"handmade/internal/logging"
)

// DefaultCellSize is used when NewWorld is given a non-positive size.
const DefaultCellSize = 4.0

// BroadPhase selects how candidate pairs are found.
type BroadPhase int

const (
	// BroadPhaseGrid buckets bounds into a uniform spatial hash.
	BroadPhaseGrid BroadPhase = iota
	// BroadPhaseNaive tests every pair.
	BroadPhaseNaive
)

// CollisionPair represents two objects that are colliding. A has the lower UID.
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent collision pair (smaller UID first)
func makePair(a, b *engine.GameObject) CollisionPair {
	if a.UID > b.UID {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

// Refs returns the pair as UID references.
func (p CollisionPair) Refs() (engine.GameObjectRef, engine.GameObjectRef) {
	return engine.RefTo(p.A), engine.RefTo(p.B)
}

// entry is one collider of one object.
type entry struct {
	obj      *engine.GameObject
	collider engine.Collider
}

// Stats describes the most recent Step.
type Stats struct {
	Colliders     int
	Candidates    int // narrow-phase tests run
	Contacts      int
	Unbucketed    int // planes and oversized bounds
	OccupiedCells int
}

type World struct {
	// CollisionStarted and CollisionEnded fire after the per-object
	// OnCollisionEnter/Exit callbacks.
	CollisionStarted engine.EventWithArg[CollisionPair]
	CollisionEnded   engine.EventWithArg[CollisionPair]

	cellSize   float32
	broadPhase BroadPhase
	entries    []entry
	grid       map[CellKey][]int // indices into entries

	// Collision tracking for callbacks
	activeCollisions  map[CollisionPair]bool // collisions from last step
	currentCollisions map[CollisionPair]bool // collisions this step

	stats  Stats
	logger *zap.Logger
}

func NewWorld(cellSize float32, logger *zap.Logger) *World {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &World{
		cellSize:          cellSize,
		grid:              make(map[CellKey][]int),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
		logger:            logging.OrNop(logger).Named("physics"),
	}
}

func (w *World) SetBroadPhase(bp BroadPhase) { w.broadPhase = bp }

func (w *World) CellSize() float32 { return w.cellSize }

// AddObject registers every collider on g. It reports false when g has none.
func (w *World) AddObject(g *engine.GameObject) bool {
	colliders := engine.GetComponents[engine.Collider](g)
	for _, c := range colliders {
		w.entries = append(w.entries, entry{obj: g, collider: c})
	}
	return len(colliders) > 0
}

// RemoveObject drops g's colliders. Contacts it was part of end immediately,
// with the usual exit callbacks.
func (w *World) RemoveObject(g *engine.GameObject) {
	w.entries = slices.DeleteFunc(w.entries, func(e entry) bool { return e.obj == g })

	var ended []CollisionPair
	for pair := range w.activeCollisions {
		if pair.A == g || pair.B == g {
			ended = append(ended, pair)
		}
	}
	sortPairs(ended)
	for _, pair := range ended {
		delete(w.activeCollisions, pair)
		w.notifyExit(pair)
	}
}

// Step refreshes every bound from its owner and updates the contact set.
func (w *World) Step() {
	for _, e := range w.entries {
		e.collider.SyncBound()
	}

	w.currentCollisions = make(map[CollisionPair]bool, len(w.activeCollisions))
	w.stats = Stats{Colliders: len(w.entries)}

	switch w.broadPhase {
	case BroadPhaseNaive:
		w.naivePhase()
	default:
		w.gridPhase()
	}
	w.stats.Contacts = len(w.currentCollisions)

	w.dispatchCollisionCallbacks()
}

func (w *World) naivePhase() {
	for i := range w.entries {
		for j := i + 1; j < len(w.entries); j++ {
			w.testPair(w.entries[i], w.entries[j])
		}
	}
}

// gridPhase inserts each bound into every cell its extent touches and
// tests pairs sharing a cell. Planes and oversized bounds are tested
// against everything.
func (w *World) gridPhase() {
	clear(w.grid)
	var unbucketed []int

	for i, e := range w.entries {
		if !e.obj.Active {
			continue
		}
		lo, hi, ok := extent(e.collider.Bound())
		if !ok {
			unbucketed = append(unbucketed, i)
			continue
		}
		from, to := cellRange(lo, hi, w.cellSize)
		if cellCount(from, to) > maxCellsPerEntry {
			unbucketed = append(unbucketed, i)
			continue
		}
		for x := from.X; x <= to.X; x++ {
			for y := from.Y; y <= to.Y; y++ {
				key := CellKey{x, y}
				w.grid[key] = append(w.grid[key], i)
			}
		}
	}
	w.stats.Unbucketed = len(unbucketed)
	w.stats.OccupiedCells = len(w.grid)

	// Track checked pairs to avoid duplicate checks
	checked := make(map[[2]int]bool)
	try := func(i, j int) {
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if checked[key] {
			return
		}
		checked[key] = true
		w.testPair(w.entries[i], w.entries[j])
	}

	for _, cell := range w.grid {
		for a := 0; a < len(cell); a++ {
			for b := a + 1; b < len(cell); b++ {
				try(cell[a], cell[b])
			}
		}
	}
	for _, i := range unbucketed {
		for j := range w.entries {
			if i != j {
				try(i, j)
			}
		}
	}
}

func (w *World) testPair(a, b entry) {
	if a.obj == b.obj || !a.obj.Active || !b.obj.Active {
		return
	}
	pair := makePair(a.obj, b.obj)
	if w.currentCollisions[pair] {
		return
	}
	w.stats.Candidates++
	if bound.Collide(a.collider.Bound(), b.collider.Bound()) {
		w.currentCollisions[pair] = true
	}
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers in
// UID order.
func (w *World) dispatchCollisionCallbacks() {
	var started, ended []CollisionPair
	for pair := range w.currentCollisions {
		if !w.activeCollisions[pair] {
			started = append(started, pair)
		}
	}
	for pair := range w.activeCollisions {
		if !w.currentCollisions[pair] {
			ended = append(ended, pair)
		}
	}

	// Swap buffers
	w.activeCollisions = w.currentCollisions

	sortPairs(ended)
	for _, pair := range ended {
		w.notifyExit(pair)
	}
	sortPairs(started)
	for _, pair := range started {
		w.notifyEnter(pair)
	}
}

func (w *World) notifyEnter(pair CollisionPair) {
	w.logger.Debug("collision started",
		zap.String("a", pair.A.Name), zap.Uint64("a_uid", pair.A.UID),
		zap.String("b", pair.B.Name), zap.Uint64("b_uid", pair.B.UID))
	notifyCollisionEnter(pair.A, pair.B)
	notifyCollisionEnter(pair.B, pair.A)
	w.CollisionStarted.Invoke(pair)
}

func (w *World) notifyExit(pair CollisionPair) {
	w.logger.Debug("collision ended",
		zap.String("a", pair.A.Name), zap.Uint64("a_uid", pair.A.UID),
		zap.String("b", pair.B.Name), zap.Uint64("b_uid", pair.B.UID))
	notifyCollisionExit(pair.A, pair.B)
	notifyCollisionExit(pair.B, pair.A)
	w.CollisionEnded.Invoke(pair)
}

// notifyCollisionEnter calls OnCollisionEnter on all handlers in obj
func notifyCollisionEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

// notifyCollisionExit calls OnCollisionExit on all handlers in obj
func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}

// IsColliding reports whether a and b were in contact after the last Step.
func (w *World) IsColliding(a, b *engine.GameObject) bool {
	return w.activeCollisions[makePair(a, b)]
}

// Pairs returns the current contacts ordered by UID.
func (w *World) Pairs() []CollisionPair {
	pairs := make([]CollisionPair, 0, len(w.activeCollisions))
	for pair := range w.activeCollisions {
		pairs = append(pairs, pair)
	}
	sortPairs(pairs)
	return pairs
}

func (w *World) Stats() Stats { return w.stats }

// Colliders returns every registered collider, for debug drawing.
func (w *World) Colliders() []engine.Collider {
	out := make([]engine.Collider, 0, len(w.entries))
	for _, e := range w.entries {
		if e.obj.Active {
			out = append(out, e.collider)
		}
	}
	return out
}

func sortPairs(pairs []CollisionPair) {
	slices.SortFunc(pairs, func(x, y CollisionPair) int {
		if c := cmp.Compare(x.A.UID, y.A.UID); c != 0 {
			return c
		}
		return cmp.Compare(x.B.UID, y.B.UID)
	})
}
