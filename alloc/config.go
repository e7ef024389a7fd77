package alloc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a resource and an allocation policy.
//
//	limit_bytes: 1048576
//	pool:
//	  preset: Nodes
//
// or with explicit size classes:
//
//	pool:
//	  name: custom
//	  small_min: 1
//	  small_max: 32
//	  small_increment: 4
//	  medium_max: 4096
//	  growth_factor: 2
//	  max_free: 64
type Config struct {
	// LimitBytes bounds the resource; 0 selects the unbounded heap.
	LimitBytes int `yaml:"limit_bytes"`

	// Pool enables the pooled allocator. Nil selects Standard.
	Pool *PoolConfig `yaml:"pool"`
}

// PoolConfig selects size classes either by preset name or inline.
type PoolConfig struct {
	Preset          string `yaml:"preset"`
	SizeClassConfig `yaml:",inline"`
}

// LoadConfig parses YAML into a Config and validates it. Unknown keys are rejected.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and resolves a pool preset in place.
func (c *Config) Validate() error {
	if c.LimitBytes < 0 {
		return fmt.Errorf("%w: limit_bytes must be >= 0, got %d", ErrBadConfig, c.LimitBytes)
	}
	if c.Pool == nil {
		return nil
	}
	if c.Pool.Preset != "" {
		preset, ok := Presets[c.Pool.Preset]
		if !ok {
			return fmt.Errorf("%w: unknown pool preset %q", ErrBadConfig, c.Pool.Preset)
		}
		c.Pool.SizeClassConfig = preset
	}
	return c.Pool.SizeClassConfig.Validate()
}

// NewResource builds the resource described by c.
func (c Config) NewResource() Resource {
	if c.LimitBytes == 0 {
		return Heap()
	}
	return NewBounded(c.LimitBytes)
}

// FromConfig builds an allocator for T over r following c's policy. A nil r
// selects c.NewResource().
func FromConfig[T any](c Config, r Resource, opts ...Option[T]) (Allocator[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = c.NewResource()
	}
	if c.Pool != nil {
		return NewPooled[T](r, c.Pool.SizeClassConfig, opts...), nil
	}
	return New[T](r, opts...), nil
}
