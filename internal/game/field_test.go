package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/random"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newTestField(t *testing.T, sampler random.Sampler) (*Field, *fakePhysics, config.FlappyConfig) {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	physics := newFakePhysics()
	placer := Placer{Sampler: sampler, FieldHeight: cfg.Field.Height, Margin: cfg.Obstacles.Margin}
	return NewField(physics, placer, cfg), physics, cfg
}

func newTestTracker(cfg config.FlappyConfig) *ScoreTracker {
	return NewScoreTracker(cfg.Difficulty, storage.NewMemoryKV(), cfg.Storage.BestScoreKey, nil, nil)
}

func TestFieldPopulateStaggers(t *testing.T) {
	field, physics, cfg := newTestField(t, random.NewSampler(7))
	field.Populate(config.TierEasy)

	pairs := field.Pairs()
	if len(pairs) != 4 {
		t.Fatalf("pool size = %d, want 4", len(pairs))
	}

	prev := 0.0
	for i, p := range pairs {
		if p.X <= prev {
			t.Errorf("pair %d x = %v, want > %v", i, p.X, prev)
		}
		if dx := p.X - prev; dx < 300 || dx > 450 {
			t.Errorf("pair %d spacing = %v, want in [300, 450]", i, dx)
		}
		if gap := p.VerticalGap(); gap < 150 || gap > 200 {
			t.Errorf("pair %d gap = %v, want in [150, 200]", i, gap)
		}
		if p.GapTop < 20 || p.GapBottom > 580 {
			t.Errorf("pair %d gap = [%v, %v], want inside [20, 580]", i, p.GapTop, p.GapBottom)
		}
		prev = p.X

		upper := physics.Bounds(p.Upper)
		lower := physics.Bounds(p.Lower)
		if upper.X != p.X || lower.X != p.X {
			t.Errorf("pair %d bodies at %v/%v, want %v", i, upper.X, lower.X, p.X)
		}
		if upper.Bottom() != p.GapTop || lower.Top() != p.GapBottom {
			t.Errorf("pair %d bodies frame [%v, %v], want [%v, %v]", i, upper.Bottom(), lower.Top(), p.GapTop, p.GapBottom)
		}
		for _, e := range []struct{ vx, vy float64 }{
			{physics.bodies[p.Upper].vx, physics.bodies[p.Upper].vy},
			{physics.bodies[p.Lower].vx, physics.bodies[p.Lower].vy},
		} {
			if e.vx != -cfg.Physics.ScrollSpeed || e.vy != 0 {
				t.Errorf("pair %d velocity = (%v, %v), want (%v, 0)", i, e.vx, e.vy, -cfg.Physics.ScrollSpeed)
			}
		}
	}
}

func TestFieldObstaclesAreImmovable(t *testing.T) {
	field, physics, _ := newTestField(t, random.NewSampler(1))

	obstacles := field.Obstacles()
	if len(obstacles) != 8 {
		t.Fatalf("obstacles = %d, want 8", len(obstacles))
	}
	for _, e := range obstacles {
		spec := physics.bodies[e].spec
		if !spec.Immovable || spec.GravityY != 0 || spec.CollideWorldBounds {
			t.Errorf("obstacle %d spec = %+v", e, spec)
		}
	}
}

func TestFieldRecycleNothingExited(t *testing.T) {
	field, physics, cfg := newTestField(t, random.NewSampler(3))
	field.Populate(config.TierEasy)
	tracker := newTestTracker(cfg)

	// Right edge exactly at zero has not crossed yet
	first := field.Pairs()[0]
	physics.shift(first.Upper, -first.X-52)

	if n := field.Recycle(tracker); n != 0 {
		t.Errorf("Recycle() = %d, want 0", n)
	}
	if tracker.Current() != 0 {
		t.Errorf("score = %d, want 0", tracker.Current())
	}
}

func TestFieldRecycleOnePair(t *testing.T) {
	s := &lowSampler{}
	field, physics, cfg := newTestField(t, s)
	field.Populate(config.TierEasy)
	tracker := newTestTracker(cfg)

	// lowSampler spaces pairs 300 apart: 300, 600, 900, 1200
	before := field.Pairs()
	physics.shift(before[0].Upper, -before[0].X-53)

	if n := field.Recycle(tracker); n != 1 {
		t.Fatalf("Recycle() = %d, want 1", n)
	}
	if tracker.Current() != 1 {
		t.Errorf("score = %d, want 1", tracker.Current())
	}

	after := field.Pairs()
	if after[0].X != 1500 {
		t.Errorf("recycled x = %v, want 1500", after[0].X)
	}
	if after[0].Upper != before[0].Upper || after[0].Lower != before[0].Lower {
		t.Error("recycling replaced the obstacle bodies")
	}
	if got := physics.Bounds(after[0].Lower).X; got != 1500 {
		t.Errorf("lower body x = %v, want 1500", got)
	}
	if field.RightmostX() != 1500 {
		t.Errorf("RightmostX() = %v, want 1500", field.RightmostX())
	}
}

func TestFieldRecycleSeveralPairs(t *testing.T) {
	field, physics, cfg := newTestField(t, &lowSampler{})
	field.Populate(config.TierEasy)
	tracker := newTestTracker(cfg)

	pairs := field.Pairs()
	physics.shift(pairs[0].Upper, -1000)
	physics.shift(pairs[1].Upper, -1000)

	if n := field.Recycle(tracker); n != 2 {
		t.Fatalf("Recycle() = %d, want 2", n)
	}
	if tracker.Current() != 2 {
		t.Errorf("score = %d, want 2", tracker.Current())
	}

	after := field.Pairs()
	if after[0].X != 1500 || after[1].X != 1800 {
		t.Errorf("recycled x = %v, %v, want 1500, 1800", after[0].X, after[1].X)
	}
}

func TestFieldRecycleUsesTierOfTheMoment(t *testing.T) {
	s := &lowSampler{}
	field, physics, cfg := newTestField(t, s)
	field.Populate(config.TierEasy)
	tracker := newTestTracker(cfg)
	for i := 0; i < 9; i++ {
		tracker.Pass()
	}

	// Score 9 -> 10: this placement is still easy, the next is normal
	pairs := field.Pairs()
	physics.shift(pairs[0].Upper, -1000)
	s.calls = nil
	field.Recycle(tracker)

	if got := s.calls[0]; got != cfg.Difficulty.Easy.VerticalGap {
		t.Errorf("placement at score 9 used %v, want easy %v", got, cfg.Difficulty.Easy.VerticalGap)
	}
	if tracker.Tier() != config.TierNormal {
		t.Fatalf("tier = %v, want normal", tracker.Tier())
	}

	physics.shift(pairs[1].Upper, -1000)
	s.calls = nil
	field.Recycle(tracker)

	if got := s.calls[0]; got != cfg.Difficulty.Normal.VerticalGap {
		t.Errorf("placement at score 10 used %v, want normal %v", got, cfg.Difficulty.Normal.VerticalGap)
	}
}
