package bench

import "fmt"

// DefaultEntries is the default number of keys inserted by a run.
const DefaultEntries = 100000

// Config controls a benchmark run.
type Config struct {
	// Entries is the number of keys inserted during the fill phase.
	Entries int `koanf:"entries"`

	// UpdateRatio is the fraction of keys re-set during the update
	// phase (0..1).
	UpdateRatio float64 `koanf:"update_ratio"`

	// DeleteRatio is the fraction of keys removed during the delete
	// phase (0..1).
	DeleteRatio float64 `koanf:"delete_ratio"`

	// RateLimit caps mutation throughput in ops/sec. Zero means
	// unlimited.
	RateLimit float64 `koanf:"rate_limit"`

	// Seed makes key generation deterministic. Zero picks a
	// time-derived seed.
	Seed uint64 `koanf:"seed"`

	// Verify enables order-digest verification after the run.
	Verify bool `koanf:"verify"`
}

// DefaultConfig returns a default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Entries:     DefaultEntries,
		UpdateRatio: 0.2,
		DeleteRatio: 0.1,
		RateLimit:   0,
		Seed:        0,
		Verify:      true,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Entries <= 0 {
		return fmt.Errorf("entries must be positive, got %d", c.Entries)
	}
	if c.UpdateRatio < 0 || c.UpdateRatio > 1 {
		return fmt.Errorf("update_ratio must be in [0,1], got %v", c.UpdateRatio)
	}
	if c.DeleteRatio < 0 || c.DeleteRatio > 1 {
		return fmt.Errorf("delete_ratio must be in [0,1], got %v", c.DeleteRatio)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %v", c.RateLimit)
	}
	return nil
}
