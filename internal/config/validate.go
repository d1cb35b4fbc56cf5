package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Intelligence.MaxTokens <= 0 {
		return fmt.Errorf("intelligence.max_tokens must be > 0 (got %d)", c.Intelligence.MaxTokens)
	}
	if c.Intelligence.Timeout <= 0 {
		return fmt.Errorf("intelligence.timeout must be > 0 (got %v)", c.Intelligence.Timeout)
	}

	if c.Pipeline.DispatchTimeout < c.Intelligence.Timeout {
		return fmt.Errorf("pipeline.dispatch_timeout (%v) must cover intelligence.timeout (%v)",
			c.Pipeline.DispatchTimeout, c.Intelligence.Timeout)
	}
	if c.Pipeline.MaxEntries <= 0 {
		return fmt.Errorf("pipeline.max_entries must be > 0 (got %d)", c.Pipeline.MaxEntries)
	}

	return nil
}
