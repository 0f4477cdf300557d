package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Notifier.StalledThresholdDays <= 0 {
		return fmt.Errorf("notifier.stalled_threshold_days must be > 0 (got %d)", c.Notifier.StalledThresholdDays)
	}
	if c.Notifier.ScanBatchSize <= 0 {
		return fmt.Errorf("notifier.scan_batch_size must be > 0 (got %d)", c.Notifier.ScanBatchSize)
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0 (got %v)", c.Database.QueryTimeout)
	}

	return nil
}
