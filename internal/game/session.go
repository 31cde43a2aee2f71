// Package game implements the flappy gameplay core: obstacle placement and
// recycling, scoring, the session state machine and the actor controls.
//
// The package never moves bodies, measures time or draws anything itself.
// Those concerns arrive through the collaborator interfaces, which lets the
// same session run under the terminal platform or a test harness.
package game

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/random"
	"github.com/vovakirdan/tui-flappy/internal/timer"
)

// State is the session phase.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Deps bundles the collaborators a session needs.
type Deps struct {
	Physics Physics
	Timers  Timers
	Store   Store
	Display Display
	Sampler random.Sampler

	// StoreLock serializes best-score updates across sessions sharing Store.
	StoreLock sync.Locker
	Logger    *log.Logger
}

// ErrMissingDependency is returned by NewSession when a required
// collaborator is nil.
var ErrMissingDependency = errors.New("game: missing dependency")

// Session is one game scene: a bird, a pool of obstacle pairs and a score,
// cycling through running, paused and game over. It is not safe for
// concurrent use; the platform drives it from a single loop.
type Session struct {
	cfg     config.FlappyConfig
	physics Physics
	timers  Timers
	display Display
	logger  *log.Logger

	actor core.Entity
	field *Field
	score *ScoreTracker

	state          State
	countdown      int
	countdownTimer timer.Handle
	restartTimer   timer.Handle
	run            int
}

// NewSession validates cfg, creates every body and starts the first run.
func NewSession(cfg config.FlappyConfig, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.check(); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     cfg,
		physics: deps.Physics,
		timers:  deps.Timers,
		display: deps.Display,
		logger:  logger,
	}

	s.actor = deps.Physics.Spawn(core.BodySpec{
		Box:                core.NewBox(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height),
		GravityY:           cfg.Physics.Gravity,
		CollideWorldBounds: true,
	})

	placer := Placer{
		Sampler:     deps.Sampler,
		FieldHeight: cfg.Field.Height,
		Margin:      cfg.Obstacles.Margin,
	}
	s.field = NewField(deps.Physics, placer, cfg)
	s.score = NewScoreTracker(cfg.Difficulty, deps.Store, cfg.Storage.BestScoreKey, deps.StoreLock, logger)

	// Bodies outlive runs, so handlers are registered exactly once
	for _, obstacle := range s.field.Obstacles() {
		deps.Physics.OnCollision(s.actor, obstacle, s.onCollision)
	}

	s.start()
	return s, nil
}

func (d Deps) check() error {
	var missing []string
	if d.Physics == nil {
		missing = append(missing, "physics")
	}
	if d.Timers == nil {
		missing = append(missing, "timers")
	}
	if d.Store == nil {
		missing = append(missing, "store")
	}
	if d.Display == nil {
		missing = append(missing, "display")
	}
	if d.Sampler == nil {
		missing = append(missing, "sampler")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}

// Tick advances the game rules by one frame. The platform steps physics
// and timers before calling it.
func (s *Session) Tick() {
	if s.state != StateRunning {
		return
	}

	if s.outOfBounds() {
		s.gameOver("out of bounds")
		return
	}

	if s.field.Recycle(s.score) > 0 {
		s.display.SetText(NodeScore, scoreText(s.score.Current()))
	}
}

// Fly gives the bird an upward impulse.
func (s *Session) Fly() {
	switch s.state {
	case StatePaused:
		return
	case StateGameOver:
		if !s.cfg.Policy.FlyDuringGameOver {
			return
		}
	}
	s.physics.SetVelocity(s.actor, 0, -s.cfg.Physics.FlapVelocity)
}

// OnPointerDown handles a click or tap.
func (s *Session) OnPointerDown() {
	s.Fly()
}

// OnSpaceKeyDown handles the flap key.
func (s *Session) OnSpaceKeyDown() {
	s.Fly()
}

// PauseButtonPressed freezes a running game.
func (s *Session) PauseButtonPressed() {
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.physics.Pause()
	s.logger.Debug("paused", "run", s.run, "score", s.score.Current())
}

// Resume starts the countdown back to running. It does nothing unless the
// game is paused and no countdown is already in progress.
func (s *Session) Resume() {
	if s.state != StatePaused || s.countdownTimer != 0 {
		return
	}

	s.countdown = s.cfg.Timing.ResumeCountdown
	s.display.SetText(NodeCountdown, countdownText(s.countdown))
	s.countdownTimer = s.timers.Schedule(s.cfg.Timing.CountdownInterval, s.countDown, timer.Options{Repeat: true})
	s.logger.Debug("resuming", "run", s.run, "countdown", s.countdown)
}

func (s *Session) countDown() {
	s.countdown--
	s.display.SetText(NodeCountdown, countdownText(s.countdown))
	if s.countdown > 0 {
		return
	}

	s.display.SetText(NodeCountdown, "")
	s.timers.Cancel(s.countdownTimer)
	s.countdownTimer = 0
	s.countdown = 0
	s.state = StateRunning
	s.physics.Resume()
	s.logger.Debug("resumed", "run", s.run)
}

// Restart throws away the current run and starts a fresh one. It is called
// by the restart timer after a game over and may be called directly.
func (s *Session) Restart() {
	s.cancelTimers()
	s.start()
}

func (s *Session) start() {
	s.run++
	s.state = StateRunning
	s.countdown = 0

	s.score.Reset()
	s.field.Populate(s.score.Tier())

	s.physics.SetPosition(s.actor, s.cfg.Player.StartX, s.cfg.Player.StartY)
	s.physics.SetVelocity(s.actor, 0, 0)

	s.display.MarkActor(false)
	s.display.SetText(NodeScore, scoreText(0))
	s.display.SetText(NodeBest, bestText(s.score.LoadBest()))
	s.display.SetText(NodeCountdown, "")

	s.physics.Resume()
	s.logger.Debug("run started", "run", s.run)
}

func (s *Session) onCollision() {
	if s.state != StateRunning {
		return
	}
	s.gameOver("collision")
}

func (s *Session) gameOver(cause string) {
	if s.state == StateGameOver {
		return
	}
	s.state = StateGameOver
	s.physics.Pause()
	s.display.MarkActor(true)
	best := s.score.PersistBest()

	s.restartTimer = s.timers.Schedule(s.cfg.Timing.RestartDelay, func() {
		s.restartTimer = 0
		s.Restart()
	}, timer.Options{})

	s.logger.Debug("game over", "run", s.run, "cause", cause, "score", s.score.Current(), "best", best)
}

func (s *Session) cancelTimers() {
	if s.countdownTimer != 0 {
		s.timers.Cancel(s.countdownTimer)
		s.countdownTimer = 0
	}
	if s.restartTimer != 0 {
		s.timers.Cancel(s.restartTimer)
		s.restartTimer = 0
	}
}

func (s *Session) outOfBounds() bool {
	b := s.physics.Bounds(s.actor)
	return b.Top() <= 0 || b.Bottom() >= float64(s.cfg.Field.Height)
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Countdown returns the remaining resume steps, 0 when none is running.
func (s *Session) Countdown() int {
	return s.countdown
}

// Resuming reports whether a resume countdown is in progress.
func (s *Session) Resuming() bool {
	return s.countdownTimer != 0
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.score.Current()
}

// Best returns the best score as of the latest store read or write.
func (s *Session) Best() int {
	return s.score.Best()
}

// Tier returns the difficulty tier in effect.
func (s *Session) Tier() config.Tier {
	return s.score.Tier()
}

// Run returns how many runs this session has started, counting from 1.
func (s *Session) Run() int {
	return s.run
}

// Actor returns the bird's entity.
func (s *Session) Actor() core.Entity {
	return s.actor
}

// Pairs returns the obstacle pool as last synced.
func (s *Session) Pairs() []Pair {
	return s.field.Pairs()
}

// ObstacleWidth returns the width of every obstacle.
func (s *Session) ObstacleWidth() float64 {
	return s.field.ObstacleWidth()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Snapshot returns the externally visible state for rendering and saving.
func (s *Session) Snapshot() core.GameState {
	return core.GameState{
		Score:     s.score.Current(),
		Best:      s.score.Best(),
		Tier:      s.score.Tier().String(),
		GameOver:  s.state == StateGameOver,
		Paused:    s.state == StatePaused,
		Resuming:  s.Resuming(),
		Countdown: s.countdown,
		Run:       s.run,
	}
}
