package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const frame = 10 * time.Millisecond

type fakeHistory struct {
	scores []int
	err    error
}

func (h *fakeHistory) SaveScore(gameID string, score int) (int64, error) {
	if gameID != GameID {
		return 0, errors.New("unexpected game id " + gameID)
	}
	h.scores = append(h.scores, score)
	return int64(len(h.scores)), h.err
}

func newTestRuntime(t *testing.T, history ScoreHistory) *Runtime {
	t.Helper()
	rt, err := NewRuntime(config.DefaultFlappyConfig(), RuntimeOptions{
		Seed:    11,
		Store:   storage.NewMemoryKV(),
		History: history,
	})
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	return rt
}

// keepInGap parks the bird in the opening of whichever pair it is about to meet.
func keepInGap(rt *Runtime) {
	w := rt.World()
	s := rt.Session()
	bird := w.Bounds(s.Actor())

	y := 280.0
	for _, p := range s.Pairs() {
		upper := w.Bounds(p.Upper)
		lower := w.Bounds(p.Lower)
		if upper.Right() > bird.Left()-10 && upper.Left() < bird.Right()+10 {
			y = upper.Bottom() + (lower.Top()-upper.Bottom()-bird.H)/2
		}
	}
	w.SetPosition(s.Actor(), bird.X, y)
	w.SetVelocity(s.Actor(), 0, 0)
}

func TestRuntimeRecordsRunOnce(t *testing.T) {
	history := &fakeHistory{}
	rt := newTestRuntime(t, history)
	none := core.NewInputFrame()

	for i := 0; i < 2000 && rt.Session().Score() < 3; i++ {
		keepInGap(rt)
		rt.Step(frame, none)
	}
	if rt.Session().Score() < 3 {
		t.Fatalf("score = %d after guided flight, want >= 3", rt.Session().Score())
	}
	if rt.Session().State() != game.StateRunning {
		t.Fatalf("State() = %v during guided flight", rt.Session().State())
	}

	for i := 0; i < 300 && rt.Session().State() != game.StateGameOver; i++ {
		rt.Step(frame, none)
	}
	if rt.Session().State() != game.StateGameOver {
		t.Fatal("bird never crashed")
	}
	final := rt.Session().Score()

	// Remaining game-over frames and the restart must not record again
	for i := 0; i < 250; i++ {
		rt.Step(frame, none)
	}
	if rt.Session().Run() != 2 {
		t.Fatalf("Run() = %d, want 2", rt.Session().Run())
	}

	if len(history.scores) != 1 || history.scores[0] != final {
		t.Errorf("history = %v, want [%d]", history.scores, final)
	}
}

func TestRuntimeSkipsZeroScore(t *testing.T) {
	history := &fakeHistory{}
	rt := newTestRuntime(t, history)

	for i := 0; i < 300 && rt.Session().State() != game.StateGameOver; i++ {
		rt.Step(frame, core.NewInputFrame())
	}
	if rt.Session().State() != game.StateGameOver {
		t.Fatal("bird never crashed")
	}
	if rt.Session().Score() == 0 && len(history.scores) != 0 {
		t.Errorf("history = %v, want empty for a zero score", history.scores)
	}
}

func TestRuntimeHistoryFailureIsNotFatal(t *testing.T) {
	history := &fakeHistory{err: errors.New("disk full")}
	rt := newTestRuntime(t, history)

	for i := 0; i < 2000 && rt.Session().Score() < 1; i++ {
		keepInGap(rt)
		rt.Step(frame, core.NewInputFrame())
	}
	for i := 0; i < 300 && rt.Session().State() != game.StateGameOver; i++ {
		rt.Step(frame, core.NewInputFrame())
	}
	if rt.Session().State() != game.StateGameOver {
		t.Fatal("bird never crashed")
	}
	if len(history.scores) != 1 {
		t.Errorf("save attempts = %d, want 1", len(history.scores))
	}
}

func TestRuntimeApply(t *testing.T) {
	rt := newTestRuntime(t, nil)
	s := rt.Session()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	rt.Step(frame, in)
	if s.State() != game.StatePaused {
		t.Fatalf("State() = %v, want paused", s.State())
	}

	in.Clear()
	in.Set(core.ActionFlap)
	in.Set(core.ActionPointer)
	_, vyBefore := rt.World().Velocity(s.Actor())
	rt.Step(frame, in)
	if _, vyAfter := rt.World().Velocity(s.Actor()); vyAfter != vyBefore {
		t.Errorf("velocity changed while paused: %v -> %v", vyBefore, vyAfter)
	}

	in.Clear()
	in.Set(core.ActionConfirm)
	rt.Step(frame, in)
	if !s.Resuming() {
		t.Fatal("confirm did not start the countdown")
	}
	if got := rt.HUD().Text(game.NodeCountdown); got != "Fly in: 3" {
		t.Errorf("countdown text = %q", got)
	}

	for i := 0; i < 300; i++ {
		rt.Step(frame, core.NewInputFrame())
	}
	if s.State() != game.StateRunning {
		t.Fatalf("State() = %v after countdown, want running", s.State())
	}

	in.Clear()
	in.Set(core.ActionPointer)
	rt.Apply(in)
	if _, vy := rt.World().Velocity(s.Actor()); vy != -200 {
		t.Errorf("vy after pointer = %v, want -200", vy)
	}
}

func TestRuntimeRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Field.Height = 0

	_, err := NewRuntime(cfg, RuntimeOptions{Store: storage.NewMemoryKV()})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("NewRuntime() error = %v, want ErrInvalidConfig", err)
	}
}
