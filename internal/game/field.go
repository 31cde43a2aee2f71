package game

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Field owns the fixed pool of obstacle pairs. Pairs are never destroyed;
// once one has scrolled past the left edge it is re-placed after the
// rightmost pair. Motion itself belongs to the physics collaborator.
type Field struct {
	physics Physics
	placer  Placer
	table   config.DifficultyTable
	width   float64 // Obstacle width
	height  float64 // Obstacle height
	speed   float64 // Leftward scroll speed
	pairs   []Pair
}

// NewField spawns the obstacle bodies for a pool of cfg.Obstacles.PoolSize
// pairs. Call Populate before the first tick.
func NewField(physics Physics, placer Placer, cfg config.FlappyConfig) *Field {
	f := &Field{
		physics: physics,
		placer:  placer,
		table:   cfg.Difficulty,
		width:   float64(cfg.Obstacles.Width),
		height:  float64(cfg.Obstacles.Height),
		speed:   cfg.Physics.ScrollSpeed,
		pairs:   make([]Pair, cfg.Obstacles.PoolSize),
	}

	for i := range f.pairs {
		// Upper obstacles hang from the gap top, lower ones stand on the gap bottom
		f.pairs[i].Upper = physics.Spawn(core.BodySpec{
			Box:       core.NewBox(0, -f.height, f.width, f.height),
			Immovable: true,
		})
		f.pairs[i].Lower = physics.Spawn(core.BodySpec{
			Box:       core.NewBox(0, 0, f.width, f.height),
			Immovable: true,
		})
	}
	return f
}

// Populate lays out the whole pool from scratch for tier and starts it scrolling.
// Pairs are placed one after another, each after the previous rightmost.
func (f *Field) Populate(tier config.Tier) {
	for i := range f.pairs {
		f.pairs[i].X = 0
	}
	for i := range f.pairs {
		f.place(i, tier)
	}
	for _, p := range f.pairs {
		f.physics.SetVelocity(p.Upper, -f.speed, 0)
		f.physics.SetVelocity(p.Lower, -f.speed, 0)
	}
}

// Recycle re-places every pair that has fully left the field and credits
// one pass per pair. Each placement uses the tier current at that moment,
// so a pass that raises the tier affects the very next placement.
// Returns the number of pairs recycled.
func (f *Field) Recycle(score *ScoreTracker) int {
	f.sync()

	recycled := 0
	for i := range f.pairs {
		if f.pairs[i].X+f.width >= 0 {
			continue
		}
		f.place(i, score.Tier())
		score.Pass()
		recycled++
	}
	return recycled
}

// RightmostX returns the largest pair x, never less than 0.
func (f *Field) RightmostX() float64 {
	rightmost := 0.0
	for _, p := range f.pairs {
		rightmost = max(rightmost, p.X)
	}
	return rightmost
}

// Pairs returns a copy of the pool.
func (f *Field) Pairs() []Pair {
	return slices.Clone(f.pairs)
}

// Obstacles returns every obstacle entity in the pool.
func (f *Field) Obstacles() []core.Entity {
	entities := make([]core.Entity, 0, 2*len(f.pairs))
	for _, p := range f.pairs {
		entities = append(entities, p.Upper, p.Lower)
	}
	return entities
}

// ObstacleWidth returns the width of every obstacle.
func (f *Field) ObstacleWidth() float64 {
	return f.width
}

func (f *Field) place(i int, tier config.Tier) {
	f.pairs[i] = f.placer.Place(f.pairs[i], f.RightmostX(), f.table.Ranges(tier))

	p := f.pairs[i]
	f.physics.SetPosition(p.Upper, p.X, p.GapTop-f.height)
	f.physics.SetPosition(p.Lower, p.X, p.GapBottom)
}

// sync reads the scrolled positions back from physics.
func (f *Field) sync() {
	for i := range f.pairs {
		f.pairs[i].X = f.physics.Bounds(f.pairs[i].Upper).X
	}
}
