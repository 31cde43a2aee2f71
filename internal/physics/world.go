// Package physics implements a small arcade physics world: axis-aligned
// bodies with velocity and gravity, world-bound clamping and overlap
// callbacks. It is the physics collaborator the game session drives.
package physics

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// body is a simulated box.
type body struct {
	box                core.Box
	vx, vy             float64
	gravityY           float64
	immovable          bool
	collideWorldBounds bool
}

// collider is a registered overlap callback between two bodies.
type collider struct {
	a, b    core.Entity
	handler func()
}

// World owns every body and advances them in fixed steps.
// It is not safe for concurrent use; each session owns one.
type World struct {
	width, height float64
	bodies        map[core.Entity]*body
	nextID        core.Entity
	colliders     []collider
	paused        bool
}

// NewWorld creates an empty world whose bounds are [0, width] x [0, height].
func NewWorld(width, height float64) *World {
	return &World{
		width:  width,
		height: height,
		bodies: make(map[core.Entity]*body),
	}
}

// Spawn adds a body and returns its entity.
func (w *World) Spawn(spec core.BodySpec) core.Entity {
	w.nextID++
	w.bodies[w.nextID] = &body{
		box:                spec.Box,
		gravityY:           spec.GravityY,
		immovable:          spec.Immovable,
		collideWorldBounds: spec.CollideWorldBounds,
	}
	return w.nextID
}

// SetVelocity replaces the velocity of e.
func (w *World) SetVelocity(e core.Entity, vx, vy float64) {
	b := w.mustBody(e)
	b.vx, b.vy = vx, vy
}

// Velocity returns the velocity of e.
func (w *World) Velocity(e core.Entity) (vx, vy float64) {
	b := w.mustBody(e)
	return b.vx, b.vy
}

// SetPosition moves the top-left corner of e.
func (w *World) SetPosition(e core.Entity, x, y float64) {
	b := w.mustBody(e)
	b.box.X, b.box.Y = x, y
}

// Bounds returns the current box of e.
func (w *World) Bounds(e core.Entity) core.Box {
	return w.mustBody(e).box
}

// Pause freezes every body until Resume.
func (w *World) Pause() {
	w.paused = true
}

// Resume lets Step move bodies again.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// OnCollision registers handler to run on every step in which a and b overlap.
func (w *World) OnCollision(a, b core.Entity, handler func()) {
	w.mustBody(a)
	w.mustBody(b)
	w.colliders = append(w.colliders, collider{a: a, b: b, handler: handler})
}

// Step integrates every body over dt and then runs collision callbacks.
// Does nothing while paused. A callback may pause the world; remaining
// callbacks for this step are skipped once it does.
func (w *World) Step(dt time.Duration) {
	if w.paused {
		return
	}

	secs := dt.Seconds()
	for _, b := range w.bodies {
		if !b.immovable {
			b.vy += b.gravityY * secs
		}
		b.box.X += b.vx * secs
		b.box.Y += b.vy * secs

		if b.collideWorldBounds {
			w.clamp(b)
		}
	}

	for _, c := range w.colliders {
		if w.paused {
			return
		}
		if w.bodies[c.a].box.Intersects(w.bodies[c.b].box) {
			c.handler()
		}
	}
}

// clamp keeps b inside the world and stops motion into the edge it hit.
func (w *World) clamp(b *body) {
	if b.box.X < 0 {
		b.box.X = 0
		b.vx = 0
	} else if b.box.Right() > w.width {
		b.box.X = w.width - b.box.W
		b.vx = 0
	}

	if b.box.Y < 0 {
		b.box.Y = 0
		b.vy = 0
	} else if b.box.Bottom() > w.height {
		b.box.Y = w.height - b.box.H
		b.vy = 0
	}
}

func (w *World) mustBody(e core.Entity) *body {
	b, ok := w.bodies[e]
	if !ok {
		panic(fmt.Sprintf("physics: unknown entity %d", e))
	}
	return b
}
