package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/random"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig

	// Store keeps the best score and the run history. When nil the best
	// score lives in memory and runs are not recorded.
	Store     *storage.Store
	StoreLock sync.Locker
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a game of flappy.
type Model struct {
	runtime    *Runtime
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	menu       *PauseMenu
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model with a fresh session.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = newSeed()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var kv game.Store = storage.NewMemoryKV()
	var history ScoreHistory
	if opts.Store != nil {
		kv = opts.Store
		history = opts.Store
	}

	rt, err := NewRuntime(opts.Game, RuntimeOptions{
		Seed:      cfg.Seed,
		Store:     kv,
		History:   history,
		StoreLock: opts.StoreLock,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		runtime:    rt,
		screen:     core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		menu:       NewPauseMenu(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}, nil
}

// newSeed draws a seed from the system source, falling back to the clock.
func newSeed() int64 {
	seed, err := random.NewSeed()
	if err != nil {
		return time.Now().UnixNano()
	}
	return seed
}

// fieldRows leaves the last terminal row for the help line.
func fieldRows(height int) int {
	return core.Max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.menuOpen() {
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.menu.Up()
		case MenuActionDown:
			m.menu.Down()
		case MenuActionBack:
			m.inputFrame.Set(core.ActionConfirm)
		case MenuActionSelect:
			if m.menu.Selected() == MenuExit {
				m.quitting = true
				return m, tea.Quit
			}
			m.inputFrame.Set(core.ActionConfirm)
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionPause {
		m.menu.Reset()
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize only rescales the view. World units do not depend on the
// terminal size, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.runtime.Step(frameDuration(m.config.TickRate), m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// menuOpen reports whether the pause menu takes the input.
func (m Model) menuOpen() bool {
	s := m.runtime.Session()
	return s.State() == game.StatePaused && !s.Resuming()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.runtime, m.menu)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot resolve home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.runtime, m.menu)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Runtime returns the simulation behind the model.
func (m Model) Runtime() *Runtime {
	return m.runtime
}

// IsQuitting returns true once the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
