package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      600,
			FlapVelocity: 200,
			ScrollSpeed:  200,
		},
		Player: PlayerConfig{
			StartX: 80,
			StartY: 300,
			Width:  48,
			Height: 40,
		},
		Obstacles: ObstacleConfig{
			PoolSize: 4,
			Width:    52,
			Height:   600,
			Margin:   20,
		},
		Difficulty: DifficultyTable{
			NormalAt: 10,
			HardAt:   20,
			Easy: TierRanges{
				HorizontalGap: Range{Min: 300, Max: 450},
				VerticalGap:   Range{Min: 150, Max: 200},
			},
			Normal: TierRanges{
				HorizontalGap: Range{Min: 280, Max: 330},
				VerticalGap:   Range{Min: 140, Max: 190},
			},
			Hard: TierRanges{
				HorizontalGap: Range{Min: 270, Max: 310},
				VerticalGap:   Range{Min: 120, Max: 160},
			},
		},
		Timing: TimingConfig{
			RestartDelay:      2 * time.Second,
			ResumeCountdown:   3,
			CountdownInterval: time.Second,
		},
		Storage: StorageConfig{
			BestScoreKey: "flappyScore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
