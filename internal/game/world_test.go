package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/random"
	"github.com/vovakirdan/tui-flappy/internal/storage"
	"github.com/vovakirdan/tui-flappy/internal/timer"
)

const frame = 10 * time.Millisecond

type liveGame struct {
	session *Session
	world   *physics.World
	timers  *timer.Scheduler
}

func newLiveGame(t *testing.T) *liveGame {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	g := &liveGame{
		world:  physics.NewWorld(float64(cfg.Field.Width), float64(cfg.Field.Height)),
		timers: timer.NewScheduler(),
	}

	s, err := NewSession(cfg, Deps{
		Physics: g.world,
		Timers:  g.timers,
		Store:   storage.NewMemoryKV(),
		Display: newFakeDisplay(),
		Sampler: random.NewSampler(99),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	g.session = s
	return g
}

func (g *liveGame) step(frames int) {
	for i := 0; i < frames; i++ {
		g.timers.Advance(frame)
		g.world.Step(frame)
		g.session.Tick()
	}
}

func TestLiveFallEndsAndRestarts(t *testing.T) {
	g := newLiveGame(t)

	over := false
	for i := 0; i < 200 && !over; i++ {
		g.step(1)
		over = g.session.State() == StateGameOver
	}
	if !over {
		t.Fatal("bird without input never crashed")
	}
	if !g.world.Paused() {
		t.Error("world still running after game over")
	}

	crashed := g.world.Bounds(g.session.Actor())
	g.step(100)
	if got := g.world.Bounds(g.session.Actor()); got != crashed {
		t.Errorf("actor moved while over: %+v -> %+v", crashed, got)
	}

	g.step(100)
	if g.session.State() != StateRunning || g.session.Run() != 2 {
		t.Fatalf("state %v run %d, want running 2", g.session.State(), g.session.Run())
	}
	if g.world.Paused() {
		t.Error("world paused after restart")
	}
	// The restart fires at the start of a frame, which then falls for one step
	if box := g.world.Bounds(g.session.Actor()); box.X != 80 || box.Y < 300 || box.Y > 300.1 {
		t.Errorf("actor at (%v, %v), want near (80, 300)", box.X, box.Y)
	}
}

func TestLiveObstaclesScroll(t *testing.T) {
	g := newLiveGame(t)
	before := g.session.Pairs()

	// Keep the bird airborne for half a second
	for i := 0; i < 50; i++ {
		if i%20 == 0 {
			g.session.Fly()
		}
		g.step(1)
	}
	if g.session.State() != StateRunning {
		t.Fatalf("State() = %v, want running", g.session.State())
	}

	after := g.session.Pairs()
	for i := range before {
		moved := before[i].X - after[i].X
		if moved < 99.9 || moved > 100.1 {
			t.Errorf("pair %d moved %v, want 100", i, moved)
		}
	}
}

func TestLivePauseFreezes(t *testing.T) {
	g := newLiveGame(t)
	g.step(5)
	g.session.PauseButtonPressed()
	frozen := g.session.Pairs()

	g.step(50)
	g.session.Resume()
	g.step(299)
	if g.session.State() != StatePaused {
		t.Fatalf("State() = %v before countdown ends, want paused", g.session.State())
	}
	g.step(1)
	if g.session.State() != StateRunning {
		t.Fatalf("State() = %v after countdown, want running", g.session.State())
	}

	// The countdown ends at the start of the frame, so that frame moves
	for i, p := range g.session.Pairs() {
		if moved := frozen[i].X - p.X; moved < 1.9 || moved > 2.1 {
			t.Errorf("pair %d moved %v, want 2", i, moved)
		}
	}
}

func TestLiveCollisionEndsGame(t *testing.T) {
	g := newLiveGame(t)
	upper := g.world.Bounds(g.session.Pairs()[0].Upper)

	// Tuck the bird 10 units into the upper obstacle, well below the top edge
	g.world.SetPosition(g.session.Actor(), upper.X+5, upper.Bottom()-10)
	g.step(1)

	if g.session.State() != StateGameOver {
		t.Fatalf("State() = %v, want game over", g.session.State())
	}
	if !g.world.Paused() {
		t.Error("world still running after the crash")
	}
	bird := g.world.Bounds(g.session.Actor())
	if !bird.Intersects(g.world.Bounds(g.session.Pairs()[0].Upper)) {
		t.Errorf("bird %+v no longer overlaps the obstacle", bird)
	}
	if bird.Top() <= 0 {
		t.Errorf("bird top = %v, crash should not come from the top edge", bird.Top())
	}
}
