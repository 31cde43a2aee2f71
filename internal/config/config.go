// Package config provides YAML-based game configuration loading, the
// difficulty table and environment overrides for the flappy platform.
package config

import "time"

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Field      FieldConfig     `yaml:"field"`
	Physics    PhysicsConfig   `yaml:"physics"`
	Player     PlayerConfig    `yaml:"player"`
	Obstacles  ObstacleConfig  `yaml:"obstacles"`
	Difficulty DifficultyTable `yaml:"difficulty"`
	Timing     TimingConfig    `yaml:"timing"`
	Storage    StorageConfig   `yaml:"storage"`
	Policy     PolicyConfig    `yaml:"policy"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines motion parameters in world units per second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration applied to the bird
	FlapVelocity float64 `yaml:"flap_velocity"` // Upward speed set by a flap (applied as negative vy)
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Leftward speed of every obstacle
}

// PlayerConfig defines the bird's hitbox and start position.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines the obstacle pool.
type ObstacleConfig struct {
	PoolSize int `yaml:"pool_size"` // Number of upper/lower pairs kept alive
	Width    int `yaml:"width"`     // Horizontal size of each obstacle
	Height   int `yaml:"height"`    // Vertical size of each obstacle
	Margin   int `yaml:"margin"`    // Minimum distance between the gap and the field edges
}

// TimingConfig defines the delayed transitions of a session.
type TimingConfig struct {
	RestartDelay      time.Duration `yaml:"restart_delay"`      // Game over to fresh run
	ResumeCountdown   int           `yaml:"resume_countdown"`   // Steps shown before play resumes
	CountdownInterval time.Duration `yaml:"countdown_interval"` // Time between countdown steps
}

// StorageConfig defines where the best score lives in the key-value store.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// PolicyConfig holds gameplay decisions that have no single right answer.
type PolicyConfig struct {
	// FlyDuringGameOver lets flaps through after a crash. They have no
	// visible effect because physics is paused until the restart.
	FlyDuringGameOver bool `yaml:"fly_during_game_over"`
}
