package tui

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/random"
	"github.com/vovakirdan/tui-flappy/internal/timer"
)

// GameID is the key under which finished runs are recorded.
const GameID = "flappy"

// ScoreHistory records finished runs.
type ScoreHistory interface {
	SaveScore(gameID string, score int) (int64, error)
}

// RuntimeOptions configures a Runtime.
type RuntimeOptions struct {
	Seed      int64
	Store     game.Store
	History   ScoreHistory // Optional
	StoreLock sync.Locker  // Optional, shared by sessions using the same Store
	Logger    *log.Logger
}

// Runtime owns one session together with the physics world and timers
// driving it. It advances everything in fixed frames, independent of the
// terminal, so it can be stepped directly in tests.
type Runtime struct {
	session *game.Session
	world   *physics.World
	timers  *timer.Scheduler
	hud     *HUD
	history ScoreHistory
	logger  *log.Logger
	seed    int64

	savedRun int // Last run whose score went to the history
}

// NewRuntime builds a world sized to the field and starts a session in it.
func NewRuntime(cfg config.FlappyConfig, opts RuntimeOptions) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runtime{
		world:   physics.NewWorld(float64(cfg.Field.Width), float64(cfg.Field.Height)),
		timers:  timer.NewScheduler(),
		hud:     NewHUD(),
		history: opts.History,
		logger:  logger,
		seed:    opts.Seed,
	}

	session, err := game.NewSession(cfg, game.Deps{
		Physics:   r.world,
		Timers:    r.timers,
		Store:     opts.Store,
		Display:   r.hud,
		Sampler:   random.NewSampler(opts.Seed),
		StoreLock: opts.StoreLock,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	r.session = session
	logger.Debug("runtime ready", "seed", opts.Seed)
	return r, nil
}

// Apply forwards the actions of one frame to the session.
func (r *Runtime) Apply(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		r.session.PauseButtonPressed()
	}
	if in.Has(core.ActionConfirm) {
		r.session.Resume()
	}
	if in.Has(core.ActionFlap) {
		r.session.OnSpaceKeyDown()
	}
	if in.Has(core.ActionPointer) {
		r.session.OnPointerDown()
	}
}

// Step applies input and advances one frame: timers first, then physics,
// then the game rules.
func (r *Runtime) Step(dt time.Duration, in core.InputFrame) {
	r.Apply(in)
	r.timers.Advance(dt)
	r.world.Step(dt)
	r.session.Tick()
	r.recordRun()
}

// recordRun saves a finished run to the history once.
func (r *Runtime) recordRun() {
	st := r.session.Snapshot()
	if !st.GameOver || r.savedRun == st.Run {
		return
	}
	r.savedRun = st.Run

	score := st.Score
	if r.history == nil || score == 0 {
		return
	}
	if _, err := r.history.SaveScore(GameID, score); err != nil {
		r.logger.Warn("cannot record run", "score", score, "err", err)
	}
}

// Session returns the running session.
func (r *Runtime) Session() *game.Session {
	return r.session
}

// World returns the physics world.
func (r *Runtime) World() *physics.World {
	return r.world
}

// HUD returns the overlay the session writes to.
func (r *Runtime) HUD() *HUD {
	return r.hud
}

// Seed returns the seed obstacle placement was drawn from.
func (r *Runtime) Seed() int64 {
	return r.seed
}
