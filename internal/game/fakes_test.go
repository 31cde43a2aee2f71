package game

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeBody struct {
	spec   core.BodySpec
	box    core.Box
	vx, vy float64
}

type fakeCollider struct {
	a, b    core.Entity
	handler func()
}

// fakePhysics records calls and moves bodies only when told to.
type fakePhysics struct {
	bodies    map[core.Entity]*fakeBody
	next      core.Entity
	colliders []fakeCollider
	paused    bool
	pauses    int
	resumes   int
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[core.Entity]*fakeBody)}
}

func (p *fakePhysics) Spawn(spec core.BodySpec) core.Entity {
	p.next++
	p.bodies[p.next] = &fakeBody{spec: spec, box: spec.Box}
	return p.next
}

func (p *fakePhysics) SetVelocity(e core.Entity, vx, vy float64) {
	p.bodies[e].vx, p.bodies[e].vy = vx, vy
}

func (p *fakePhysics) SetPosition(e core.Entity, x, y float64) {
	p.bodies[e].box.X, p.bodies[e].box.Y = x, y
}

func (p *fakePhysics) Pause() {
	p.paused = true
	p.pauses++
}

func (p *fakePhysics) Resume() {
	p.paused = false
	p.resumes++
}

func (p *fakePhysics) OnCollision(a, b core.Entity, handler func()) {
	p.colliders = append(p.colliders, fakeCollider{a: a, b: b, handler: handler})
}

func (p *fakePhysics) Bounds(e core.Entity) core.Box {
	return p.bodies[e].box
}

// shift moves e horizontally by dx.
func (p *fakePhysics) shift(e core.Entity, dx float64) {
	p.bodies[e].box.X += dx
}

// collide fires every handler registered for the pair (a, b).
func (p *fakePhysics) collide(a, b core.Entity) {
	for _, c := range p.colliders {
		if c.a == a && c.b == b {
			c.handler()
		}
	}
}

type fakeDisplay struct {
	texts   map[Node]string
	history map[Node][]string
	marked  bool
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		texts:   make(map[Node]string),
		history: make(map[Node][]string),
	}
}

func (d *fakeDisplay) SetText(node Node, text string) {
	d.texts[node] = text
	d.history[node] = append(d.history[node], text)
}

func (d *fakeDisplay) MarkActor(hit bool) {
	d.marked = hit
}

// lowSampler always picks the minimum and records every range it was asked for.
type lowSampler struct {
	calls []config.Range
}

func (s *lowSampler) Between(min, max int) int {
	s.calls = append(s.calls, config.Range{Min: min, Max: max})
	return min
}

// highSampler always picks the maximum.
type highSampler struct{}

func (highSampler) Between(_, max int) int {
	return max
}

var errStoreDown = errors.New("store down")

// brokenStore fails every call.
type brokenStore struct {
	sets int
}

func (s *brokenStore) Get(string) (string, bool, error) {
	return "", false, errStoreDown
}

func (s *brokenStore) Set(string, string) error {
	s.sets++
	return errStoreDown
}

// failingReads fails Get while fail is set.
type failingReads struct {
	*storage.MemoryKV
	fail bool
}

func (s *failingReads) Get(key string) (string, bool, error) {
	if s.fail {
		return "", false, errStoreDown
	}
	return s.MemoryKV.Get(key)
}

// countingLock counts acquisitions.
type countingLock struct {
	locks, unlocks int
}

func (l *countingLock) Lock()   { l.locks++ }
func (l *countingLock) Unlock() { l.unlocks++ }
