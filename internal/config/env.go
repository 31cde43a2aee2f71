package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from FLAPPY_* variables.
// The CLI uses them as flag defaults.
type Env struct {
	DBPath     string `env:"FLAPPY_DB" envDefault:"~/.arcade/flappy.db"`
	ConfigPath string `env:"FLAPPY_CONFIG"`
	FPS        int    `env:"FLAPPY_FPS" envDefault:"60"`
	Seed       int64  `env:"FLAPPY_SEED" envDefault:"0"`
	LogLevel   string `env:"FLAPPY_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"FLAPPY_LOG_FILE"`
	SSHAddr    string `env:"FLAPPY_SSH_ADDR" envDefault:":23234"`
	HostKey    string `env:"FLAPPY_HOST_KEY"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	return parseEnv(env.Options{})
}

// ParseEnvFrom loads Env from the given variables instead of the process environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
