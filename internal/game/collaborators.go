package game

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/timer"
)

// Physics moves bodies and reports overlaps. The session never integrates
// motion or computes collision geometry itself.
type Physics interface {
	Spawn(spec core.BodySpec) core.Entity
	SetVelocity(e core.Entity, vx, vy float64)
	SetPosition(e core.Entity, x, y float64)
	Pause()
	Resume()
	OnCollision(a, b core.Entity, handler func())
	Bounds(e core.Entity) core.Box
}

// Timers runs deferred callbacks on later ticks.
type Timers interface {
	Schedule(delay time.Duration, fn func(), opts timer.Options) timer.Handle
	Cancel(h timer.Handle) bool
}

// Store is a string key-value store holding the best score.
type Store interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Node names a text element the session writes to.
type Node int

const (
	NodeScore Node = iota
	NodeBest
	NodeCountdown
)

// Display receives the session's text and the crashed-bird marker.
// It is write-only from the session's point of view.
type Display interface {
	SetText(node Node, text string)
	MarkActor(hit bool)
}
