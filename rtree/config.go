package rtree

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxEntries is the node fan-out ceiling used if none is configured.
	DefaultMaxEntries = 4
	// DefaultMinEntries is the minimum occupancy of non-root nodes used with
	// DefaultMaxEntries.
	DefaultMinEntries = 2
)

// Config configures an R-tree.
//
// Zero values select defaults: MaxEntries falls back to DefaultMaxEntries,
// MinEntries to MaxEntries/2 and Tolerance to exact matching.
type Config struct {
	// MaxEntries is the maximum number of entries per node.
	MaxEntries int
	// MinEntries is the minimum number of entries for non-root nodes.
	// It must not exceed MaxEntries/2.
	MinEntries int
	// Tolerance is used by Remove to match stored rectangles: all four
	// coordinates have to differ by less than Tolerance. 0 means exact match.
	Tolerance float64
}

// DefaultConfig returns a configuration with MaxEntries=4, MinEntries=2 and
// exact matching on removal.
func DefaultConfig() Config {
	return Config{MaxEntries: DefaultMaxEntries, MinEntries: DefaultMinEntries}
}

func (cfg Config) normalized() Config {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MinEntries == 0 {
		cfg.MinEntries = cfg.MaxEntries / 2
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxEntries < 2 {
		return fmt.Errorf("%w: max entries must be at least 2, is %d", ErrInvalidConfig, cfg.MaxEntries)
	}
	if cfg.MinEntries < 1 {
		return fmt.Errorf("%w: min entries must be at least 1, is %d", ErrInvalidConfig, cfg.MinEntries)
	}
	if cfg.MinEntries > cfg.MaxEntries/2 {
		return fmt.Errorf("%w: min entries (%d) must be less than or equal to half of max entries (%d)",
			ErrInvalidConfig, cfg.MinEntries, cfg.MaxEntries)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be a finite value >= 0", ErrInvalidConfig)
	}
	return nil
}
