package alloc

import (
	"fmt"
	"math"
)

// SizeClassConfig defines the pooled allocator's size class strategy, in
// element counts. Small requests use linear classes; medium requests grow
// geometrically; anything above MediumMax bypasses the pool.
type SizeClassConfig struct {
	// Name for this configuration (for benchmarking and logs)
	Name string `yaml:"name"`

	// Small allocation settings (linear increments)
	SmallMin       int `yaml:"small_min"`       // smallest class capacity (typically 1)
	SmallMax       int `yaml:"small_max"`       // end of the linear range
	SmallIncrement int `yaml:"small_increment"` // capacity step inside the linear range

	// Medium allocation settings (geometric growth)
	MediumMax    int     `yaml:"medium_max"`    // largest pooled capacity
	GrowthFactor float64 `yaml:"growth_factor"` // ratio between adjacent medium classes

	// MaxFree caps the cached blocks per class; extra releases go back to the resource.
	MaxFree int `yaml:"max_free"`
}

// Predefined configurations.
var (
	// ConfigNodes suits single-element requests such as list nodes:
	// one class per count up to 8, then doubling.
	ConfigNodes = SizeClassConfig{
		Name:           "Nodes",
		SmallMin:       1,
		SmallMax:       8,
		SmallIncrement: 1,
		MediumMax:      1024,
		GrowthFactor:   2.0,
		MaxFree:        256,
	}

	// ConfigFineGrained: many small buckets, good for varied workloads.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       1,
		SmallMax:       64,
		SmallIncrement: 4,
		MediumMax:      16384,
		GrowthFactor:   1.5,
		MaxFree:        64,
	}

	// ConfigBalanced: good balance between retained memory and reuse.
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       1,
		SmallMax:       64,
		SmallIncrement: 8,
		MediumMax:      16384,
		GrowthFactor:   2.0,
		MaxFree:        32,
	}

	// ConfigCoarse: fewer buckets, more slack per block.
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       1,
		SmallMax:       128,
		SmallIncrement: 32,
		MediumMax:      16384,
		GrowthFactor:   4.0,
		MaxFree:        16,
	}

	// DefaultConfig is used when a pooled allocator is requested without one.
	DefaultConfig = ConfigBalanced
)

// Presets maps configuration names to the predefined configurations.
var Presets = map[string]SizeClassConfig{
	ConfigNodes.Name:       ConfigNodes,
	ConfigFineGrained.Name: ConfigFineGrained,
	ConfigBalanced.Name:    ConfigBalanced,
	ConfigCoarse.Name:      ConfigCoarse,
}

// Validate checks that the configuration produces a usable class table.
func (c SizeClassConfig) Validate() error {
	switch {
	case c.SmallMin < 1:
		return fmt.Errorf("%w: small_min must be >= 1, got %d", ErrBadConfig, c.SmallMin)
	case c.SmallIncrement < 1:
		return fmt.Errorf("%w: small_increment must be >= 1, got %d", ErrBadConfig, c.SmallIncrement)
	case c.SmallMax < c.SmallMin:
		return fmt.Errorf("%w: small_max %d below small_min %d", ErrBadConfig, c.SmallMax, c.SmallMin)
	case c.MediumMax < c.SmallMax:
		return fmt.Errorf("%w: medium_max %d below small_max %d", ErrBadConfig, c.MediumMax, c.SmallMax)
	case c.MediumMax > c.SmallMax && c.GrowthFactor <= 1:
		return fmt.Errorf("%w: growth_factor must be > 1, got %g", ErrBadConfig, c.GrowthFactor)
	case c.MaxFree < 0:
		return fmt.Errorf("%w: max_free must be >= 0, got %d", ErrBadConfig, c.MaxFree)
	}
	return nil
}

// sizeClassTable holds the computed size class boundaries.
type sizeClassTable struct {
	config     SizeClassConfig
	boundaries []int // capacity of each class, ascending
	numClasses int
}

// newSizeClassTable computes size class boundaries from config.
func newSizeClassTable(config SizeClassConfig) *sizeClassTable {
	table := &sizeClassTable{
		config:     config,
		boundaries: make([]int, 0, 64),
	}

	// Phase 1: Small allocations (linear increments)
	for size := config.SmallMin; size < config.SmallMax; size += config.SmallIncrement {
		table.boundaries = append(table.boundaries, size+config.SmallIncrement-1)
	}

	// Phase 2: Medium allocations (geometric growth)
	if config.SmallMax < config.MediumMax {
		size := config.SmallMax
		for size < config.MediumMax {
			nextSize := int(math.Ceil(float64(size) * config.GrowthFactor))
			if nextSize <= size {
				nextSize = size + 1 // Ensure progress
			}
			table.boundaries = append(table.boundaries, min(nextSize-1, config.MediumMax))
			size = nextSize
		}
	}

	table.numClasses = len(table.boundaries)
	return table
}

// getSizeClass returns the size class index for a request of n elements.
// Returns table.numClasses for requests beyond the last class (large).
func (t *sizeClassTable) getSizeClass(n int) int {
	lo, hi := 0, t.numClasses-1

	for lo <= hi {
		mid := (lo + hi) / 2
		if n <= t.boundaries[mid] {
			if mid == 0 || n > t.boundaries[mid-1] {
				return mid
			}
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return t.numClasses
}

// capacity returns the block capacity handed out for class sc.
func (t *sizeClassTable) capacity(sc int) int {
	return t.boundaries[sc]
}

// String returns a human-readable description of the size class table.
func (t *sizeClassTable) String() string {
	return t.config.Name
}

// NumClasses returns the number of size classes (excluding the large list).
func (t *sizeClassTable) NumClasses() int {
	return t.numClasses
}
