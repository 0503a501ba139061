package frogger

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Lane is a horizontal water band spanning the whole canvas.
// Standing in it is fatal unless the actor is on a platform.
type Lane struct {
	Bounds core.RectF
}

// Platform is a lily pad drifting along a water lane.
type Platform struct {
	Bounds core.RectF
	VX     float64 // Signed speed in pixels per tick
	Lane   int     // Index into Layout.Lanes
}

// Obstacle is a car driving along a hazard lane.
type Obstacle struct {
	Bounds core.RectF
	VX     float64 // Signed speed in pixels per tick
}

// Layout is everything on the board for one level.
// It is always regenerated as a whole, never edited.
type Layout struct {
	Lanes     []Lane
	Platforms []Platform
	Obstacles []Obstacle
}

// WaterRows returns the top y of every water lane, in ascending order.
func (l Layout) WaterRows() []float64 {
	rows := make([]float64, len(l.Lanes))
	for i, lane := range l.Lanes {
		rows[i] = lane.Bounds.Y
	}
	return rows
}

// GenerateLayout builds a fresh layout from the candidate rows in cfg.
//
// cfg.Lanes.Water distinct rows are drawn uniformly without replacement and
// become water lanes, each carrying one platform whose direction alternates
// by lane index. Every other row gets one obstacle with a random direction.
// Sampled speed magnitudes are multiplied by speedFactor.
func GenerateLayout(cfg config.FroggerConfig, rng *rand.Rand, speedFactor float64) Layout {
	canvasW := cfg.Canvas.Width
	laneH := cfg.Lanes.Height

	water := sampleRows(cfg.Lanes.Rows, cfg.Lanes.Water, rng)
	sort.Float64s(water)

	isWater := make(map[float64]bool, len(water))
	layout := Layout{
		Lanes:     make([]Lane, 0, len(water)),
		Platforms: make([]Platform, 0, len(water)),
		Obstacles: make([]Obstacle, 0, len(cfg.Lanes.Rows)-len(water)),
	}

	for i, y := range water {
		isWater[y] = true
		layout.Lanes = append(layout.Lanes, Lane{
			Bounds: core.NewRectF(0, y, canvasW, laneH),
		})

		speed := randRange(rng, cfg.Platforms.MinSpeed, cfg.Platforms.MaxSpeed) * speedFactor
		if i%2 == 1 {
			speed = -speed
		}
		layout.Platforms = append(layout.Platforms, Platform{
			Bounds: core.NewRectF(rng.Float64()*(canvasW-cfg.Platforms.Width), y, cfg.Platforms.Width, laneH),
			VX:     speed,
			Lane:   i,
		})
	}

	for _, y := range cfg.Lanes.Rows {
		if isWater[y] {
			continue
		}
		x := rng.Float64() * (canvasW - cfg.Obstacles.Width)
		speed := randRange(rng, cfg.Obstacles.MinSpeed, cfg.Obstacles.MaxSpeed) * speedFactor
		if rng.Intn(2) == 0 {
			speed = -speed
		}
		layout.Obstacles = append(layout.Obstacles, Obstacle{
			Bounds: core.NewRectF(x, y, cfg.Obstacles.Width, laneH),
			VX:     speed,
		})
	}

	return layout
}

// sampleRows picks n distinct rows with a partial Fisher-Yates shuffle.
func sampleRows(rows []float64, n int, rng *rand.Rand) []float64 {
	pool := append([]float64(nil), rows...)
	n = min(n, len(pool))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// randRange returns a value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
