package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Undo.validate(); err != nil {
		return fmt.Errorf("undo: %w", err)
	}

	if c.Habit.StateCacheSize <= 0 {
		return fmt.Errorf("habit.state_cache_size must be > 0 (got %d)", c.Habit.StateCacheSize)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

const maxUndoTimeout = 5 * time.Minute

func (u *UndoConfig) validate() error {
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	if u.Timeout > maxUndoTimeout {
		return fmt.Errorf("timeout must be <= %v (got %v)", maxUndoTimeout, u.Timeout)
	}
	if u.NoticeDuration < 0 {
		return fmt.Errorf("notice_duration must be >= 0 (got %v)", u.NoticeDuration)
	}
	if u.NoticeDuration > u.Timeout {
		return fmt.Errorf("notice_duration %v must not outlive timeout %v", u.NoticeDuration, u.Timeout)
	}
	return nil
}
