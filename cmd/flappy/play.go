package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing in this terminal.

Controls:
  Space/W, click  - Flap
  P/Esc           - Pause (then Continue or Exit)
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

After a crash a new run starts by itself two seconds later.
Difficulty rises at 10 and 20 points.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --log-level debug --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, log.Options{Prefix: "flappy"})
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without storage", "err", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
