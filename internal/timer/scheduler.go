// Package timer provides deferred callbacks driven by simulation time.
//
// The platform advances a Scheduler once per tick with the tick duration,
// so callbacks fire on later ticks rather than on a wall clock. This keeps
// timed transitions deterministic in tests and lets the whole session be
// replayed tick by tick.
package timer

import (
	"fmt"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Options controls how a callback is scheduled.
type Options struct {
	// Repeat re-arms the callback with the same delay after each firing
	// until it is cancelled.
	Repeat bool
}

type event struct {
	id       Handle
	due      time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// Scheduler runs callbacks once their delay has elapsed in simulation time.
// It is not safe for concurrent use; each session owns one.
type Scheduler struct {
	now    time.Duration
	nextID Handle
	events map[Handle]*event
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		events: make(map[Handle]*event),
	}
}

// Schedule registers fn to run after delay.
// A one-shot callback fires exactly once and is then discarded.
// Panics if a repeating callback has a non-positive delay.
func (s *Scheduler) Schedule(delay time.Duration, fn func(), opts Options) Handle {
	if opts.Repeat && delay <= 0 {
		panic(fmt.Sprintf("timer: repeating callback needs a positive delay, got %v", delay))
	}
	if delay < 0 {
		delay = 0
	}

	s.nextID++
	e := &event{
		id:       s.nextID,
		due:      s.now + delay,
		interval: delay,
		repeat:   opts.Repeat,
		fn:       fn,
	}
	s.events[e.id] = e
	return e.id
}

// Cancel removes a pending callback. It reports whether the handle was pending.
// Cancelling from inside the callback itself stops a repeating timer.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.events[h]; !ok {
		return false
	}
	delete(s.events, h)
	return true
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	clear(s.events)
}

// Advance moves simulation time forward by dt and runs every callback that
// falls due, in due-time order (ties in scheduling order). A repeating
// callback may fire several times in one Advance if dt spans its interval.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0

	for {
		e := s.nextDue(target)
		if e == nil {
			break
		}

		s.now = e.due
		if e.repeat {
			e.due += e.interval
		} else {
			delete(s.events, e.id)
		}
		e.fn()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the earliest event due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *event {
	var best *event
	for _, e := range s.events {
		if e.due > target {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.id < best.id) {
			best = e
		}
	}
	return best
}

// Now returns the elapsed simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.events)
}
