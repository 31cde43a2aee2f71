package physics

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const eps = 1e-9

func TestGravityAndVelocity(t *testing.T) {
	w := NewWorld(800, 600)
	bird := w.Spawn(core.BodySpec{Box: core.NewBox(80, 300, 48, 40), GravityY: 600})

	w.Step(time.Second / 2)

	_, vy := w.Velocity(bird)
	if math.Abs(vy-300) > eps {
		t.Errorf("vy after 0.5s = %v, expected 300", vy)
	}
	// Semi-implicit Euler: position uses the updated velocity
	if got := w.Bounds(bird).Y; math.Abs(got-450) > eps {
		t.Errorf("y after 0.5s = %v, expected 450", got)
	}
}

func TestImmovableIgnoresGravity(t *testing.T) {
	w := NewWorld(800, 600)
	pipe := w.Spawn(core.BodySpec{Box: core.NewBox(400, 0, 52, 600), GravityY: 600, Immovable: true})
	w.SetVelocity(pipe, -200, 0)

	w.Step(time.Second)

	b := w.Bounds(pipe)
	if b.X != 200 || b.Y != 0 {
		t.Errorf("pipe at (%v, %v), expected (200, 0)", b.X, b.Y)
	}
}

func TestWorldBoundsClamp(t *testing.T) {
	w := NewWorld(800, 600)
	bird := w.Spawn(core.BodySpec{Box: core.NewBox(80, 550, 48, 40), GravityY: 600, CollideWorldBounds: true})
	w.SetVelocity(bird, 0, 400)

	w.Step(time.Second)

	if got := w.Bounds(bird).Bottom(); got != 600 {
		t.Errorf("bottom = %v, expected clamp to 600", got)
	}
	if _, vy := w.Velocity(bird); vy != 0 {
		t.Errorf("vy = %v, expected 0 after hitting the floor", vy)
	}

	w.SetVelocity(bird, 0, -5000)
	w.Step(time.Second)
	if got := w.Bounds(bird).Top(); got != 0 {
		t.Errorf("top = %v, expected clamp to 0", got)
	}
}

func TestPauseFreezesBodies(t *testing.T) {
	w := NewWorld(800, 600)
	bird := w.Spawn(core.BodySpec{Box: core.NewBox(80, 300, 48, 40), GravityY: 600})

	w.Pause()
	if !w.Paused() {
		t.Fatal("world should report paused")
	}
	w.Step(time.Second)
	if got := w.Bounds(bird).Y; got != 300 {
		t.Errorf("paused body moved to y=%v", got)
	}

	w.Resume()
	w.Step(time.Second)
	if got := w.Bounds(bird).Y; got == 300 {
		t.Error("resumed body should move")
	}
}

func TestCollisionCallback(t *testing.T) {
	w := NewWorld(800, 600)
	bird := w.Spawn(core.BodySpec{Box: core.NewBox(80, 300, 48, 40)})
	pipe := w.Spawn(core.BodySpec{Box: core.NewBox(200, 0, 52, 600), Immovable: true})
	w.SetVelocity(pipe, -100, 0)

	hits := 0
	w.OnCollision(bird, pipe, func() {
		hits++
		w.Pause()
	})

	// Pipe needs 0.72s to reach the bird's right edge (200 - 128 = 72 units)
	w.Step(500 * time.Millisecond)
	if hits != 0 {
		t.Fatalf("collided too early")
	}
	w.Step(500 * time.Millisecond)
	if hits != 1 {
		t.Fatalf("hits = %d, expected 1", hits)
	}

	// Paused by the handler: no further callbacks
	w.Step(500 * time.Millisecond)
	if hits != 1 {
		t.Errorf("hits = %d after pause, expected 1", hits)
	}
}

func TestSetPosition(t *testing.T) {
	w := NewWorld(800, 600)
	e := w.Spawn(core.BodySpec{Box: core.NewBox(0, 0, 10, 10)})

	w.SetPosition(e, 123, 45)
	b := w.Bounds(e)
	if b.X != 123 || b.Y != 45 || b.W != 10 {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestUnknownEntityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown entity")
		}
	}()
	NewWorld(10, 10).Bounds(core.Entity(42))
}
