// flappy is a terminal flappy-bird game.
//
// Usage:
//
//	flappy play     - Play a game in this terminal
//	flappy serve    - Start SSH server for remote play
//	flappy scores   - Show the best score and recorded runs
//	flappy config   - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacle layouts
//	--db <path>           - Set database path (default: ~/.arcade/flappy.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// Every global flag defaults to the matching FLAPPY_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// envDefaults holds FLAPPY_* settings, read before flags are registered.
var envDefaults = loadEnv()

func loadEnv() config.Env {
	e, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring environment: %v\n", err)
		e, _ = config.ParseEnvFrom(map[string]string{})
	}
	return e
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a terminal take on the classic flappy-bird game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best score and recorded runs
  config   - Print the effective game configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy scores --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envDefaults.LogFile, "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
