package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the invariants the game relies on at startup.
// All violations are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		fail("field must have positive size, got %dx%d", c.Field.Width, c.Field.Height)
	}

	if c.Physics.Gravity <= 0 {
		fail("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.FlapVelocity <= 0 {
		fail("physics.flap_velocity must be positive, got %v", c.Physics.FlapVelocity)
	}
	if c.Physics.ScrollSpeed <= 0 {
		fail("physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		fail("player must have positive size, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.StartY <= 0 || c.Player.StartY+c.Player.Height >= float64(c.Field.Height) {
		fail("player.start_y %v puts the bird out of bounds", c.Player.StartY)
	}

	if c.Obstacles.PoolSize < 2 {
		fail("obstacles.pool_size must be at least 2, got %d", c.Obstacles.PoolSize)
	}
	if c.Obstacles.Width <= 0 {
		fail("obstacles.width must be positive, got %d", c.Obstacles.Width)
	}
	if c.Obstacles.Height < c.Field.Height {
		fail("obstacles.height %d must cover the field height %d", c.Obstacles.Height, c.Field.Height)
	}
	if c.Obstacles.Margin < 0 {
		fail("obstacles.margin must not be negative, got %d", c.Obstacles.Margin)
	}

	errs = append(errs, c.validateDifficulty()...)

	if c.Timing.RestartDelay <= 0 {
		fail("timing.restart_delay must be positive, got %v", c.Timing.RestartDelay)
	}
	if c.Timing.ResumeCountdown < 1 {
		fail("timing.resume_countdown must be at least 1, got %d", c.Timing.ResumeCountdown)
	}
	if c.Timing.CountdownInterval <= 0 {
		fail("timing.countdown_interval must be positive, got %v", c.Timing.CountdownInterval)
	}

	if c.Storage.BestScoreKey == "" {
		fail("storage.best_score_key must not be empty")
	}

	return errors.Join(errs...)
}

func (c FlappyConfig) validateDifficulty() []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	d := c.Difficulty
	if d.NormalAt <= 0 || d.HardAt <= d.NormalAt {
		fail("difficulty thresholds must satisfy 0 < normal_at < hard_at, got %d and %d", d.NormalAt, d.HardAt)
	}

	// The gap plus both margins must fit inside the field.
	maxOpening := c.Field.Height - 2*c.Obstacles.Margin
	for _, t := range Tiers {
		r := d.Ranges(t)
		if r.HorizontalGap.Min <= 0 || r.HorizontalGap.Min > r.HorizontalGap.Max {
			fail("%s.horizontal_gap [%d, %d] must be a positive range", t, r.HorizontalGap.Min, r.HorizontalGap.Max)
		}
		if r.VerticalGap.Min <= 0 || r.VerticalGap.Min > r.VerticalGap.Max {
			fail("%s.vertical_gap [%d, %d] must be a positive range", t, r.VerticalGap.Min, r.VerticalGap.Max)
		}
		if r.VerticalGap.Max >= maxOpening {
			fail("%s.vertical_gap max %d must be below %d (field height minus margins)", t, r.VerticalGap.Max, maxOpening)
		}
	}

	// Later tiers never widen a range.
	for i := 1; i < len(Tiers); i++ {
		prev, cur := d.Ranges(Tiers[i-1]), d.Ranges(Tiers[i])
		if !tightens(prev.HorizontalGap, cur.HorizontalGap) {
			fail("%s.horizontal_gap must not be wider than %s", Tiers[i], Tiers[i-1])
		}
		if !tightens(prev.VerticalGap, cur.VerticalGap) {
			fail("%s.vertical_gap must not be wider than %s", Tiers[i], Tiers[i-1])
		}
	}

	return errs
}

func tightens(prev, cur Range) bool {
	return cur.Min <= prev.Min && cur.Max <= prev.Max
}
