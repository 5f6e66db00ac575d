// Stress test comparing the spatial-hash broad phase against naive O(n²) pairing
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"handmade/internal/components"
	"handmade/internal/engine"
	"handmade/internal/logging"
	"handmade/internal/physics"
)

func main() {
	iterations := flag.Int("iterations", 10, "steps timed per broad phase")
	cellSize := flag.Float64("cell", physics.DefaultCellSize, "grid cell size")
	verbose := flag.Bool("v", false, "log each run")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(level, logging.FormatConsole)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Test various object counts
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}

	for _, count := range testCounts {
		testBroadPhase(count, *iterations, float32(*cellSize), logger)
	}
}

// spawn fills a square that grows with count to keep density reasonable.
// Two thirds are circles and the rest boxes, a few of them rotated.
func spawn(count int, seed uint64) []*engine.GameObject {
	r := rand.New(rand.NewPCG(seed, 42)) // Consistent results
	spawnSize := float32(50.0) + float32(count)/20.0

	objects := make([]*engine.GameObject, count)
	for i := range objects {
		g := engine.NewGameObject(fmt.Sprintf("obj%d", i))
		g.Transform.Position.X = r.Float32()*spawnSize - spawnSize/2
		g.Transform.Position.Y = r.Float32()*spawnSize - spawnSize/2

		switch i % 6 {
		case 0:
			g.AddComponent(components.NewBoxCollider(0.5+r.Float32(), 0.5+r.Float32()))
		case 1:
			g.Transform.Rotation = r.Float32() * 360
			g.AddComponent(components.NewOrientedBoxCollider(0.5+r.Float32(), 0.5+r.Float32()))
		default:
			g.AddComponent(components.NewSphereCollider(0.5 + r.Float32()*0.5)) // 0.5 to 1.0 radius
		}
		objects[i] = g
	}
	return objects
}

func newWorld(objects []*engine.GameObject, bp physics.BroadPhase, cellSize float32, logger *zap.Logger) *physics.World {
	w := physics.NewWorld(cellSize, logger)
	w.SetBroadPhase(bp)
	for _, g := range objects {
		g.Start()
		w.AddObject(g)
	}
	return w
}

func timeSteps(w *physics.World, iterations int) time.Duration {
	w.Step() // Warm up
	start := time.Now()
	for i := 0; i < iterations; i++ {
		w.Step()
	}
	return time.Since(start) / time.Duration(iterations)
}

func testBroadPhase(count, iterations int, cellSize float32, logger *zap.Logger) {
	objects := spawn(count, uint64(count))

	grid := newWorld(objects, physics.BroadPhaseGrid, cellSize, logger)
	gridTime := timeSteps(grid, iterations)
	gridStats := grid.Stats()

	naive := newWorld(objects, physics.BroadPhaseNaive, cellSize, logger)
	naiveTime := timeSteps(naive, iterations)
	naiveStats := naive.Stats()

	mismatch := ""
	if gridStats.Contacts != naiveStats.Contacts {
		mismatch = "  MISMATCH"
	}

	// Calculate speedup
	speedup := float64(naiveTime) / float64(gridTime)

	fmt.Printf("%5d objects: grid %8v (%6d tests, %4d pairs) | naive %10v (%8d tests, %4d pairs) | %.1fx speedup%s\n",
		count, gridTime.Round(time.Microsecond), gridStats.Candidates, gridStats.Contacts,
		naiveTime.Round(time.Microsecond), naiveStats.Candidates, naiveStats.Contacts, speedup, mismatch)

	logger.Debug("broad phase compared",
		zap.Int("objects", count),
		zap.Int("cells", gridStats.OccupiedCells),
		zap.Duration("grid", gridTime),
		zap.Duration("naive", naiveTime))
}
