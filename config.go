package chash

import (
	"fmt"
	"log"
	"math"
)

const (
	// DefaultCapacity is the number of buckets a table starts with.
	DefaultCapacity = 8
	// MinCapacity is the floor below which a table never shrinks.
	MinCapacity = 8
	// MaxCapacity is the default upper bound on the bucket array length.
	MaxCapacity = 1 << 30

	DefaultLoadFactor      = 0.75
	DefaultShrinkThreshold = 0.25
)

// Config holds the tunables applied by New and NewWithHasher.
type Config struct {
	Capacity        int
	LoadFactor      float64
	ShrinkThreshold float64
	MaxCapacity     int
	Logger          *log.Logger
}

func defaultConfig() Config {
	return Config{
		Capacity:        DefaultCapacity,
		LoadFactor:      DefaultLoadFactor,
		ShrinkThreshold: DefaultShrinkThreshold,
		MaxCapacity:     MaxCapacity,
	}
}

// WithCapacity sets the initial number of buckets.
func WithCapacity(capacity int) func(*Config) {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithLoadFactor sets the size/capacity ratio at which Insert doubles the
// table. It must be positive and finite.
func WithLoadFactor(f float64) func(*Config) {
	return func(c *Config) {
		c.LoadFactor = f
	}
}

// WithShrinkThreshold sets the size/capacity ratio at or below which Remove
// halves the table. It must stay under half the load factor so that a
// shrunken table is not immediately over its growth threshold.
func WithShrinkThreshold(f float64) func(*Config) {
	return func(c *Config) {
		c.ShrinkThreshold = f
	}
}

// WithMaxCapacity bounds the bucket array length. A resize beyond it fails
// with ErrCapacityTooLarge.
func WithMaxCapacity(capacity int) func(*Config) {
	return func(c *Config) {
		c.MaxCapacity = capacity
	}
}

// WithLogger enables resize tracing.
func WithLogger(l *log.Logger) func(*Config) {
	return func(c *Config) {
		c.Logger = l
	}
}

func (c *Config) validate() error {
	if !isFinite(c.LoadFactor) || c.LoadFactor <= 0 {
		return fmt.Errorf("load factor %v: %w", c.LoadFactor, ErrInvalidLoadFactor)
	}
	if !isFinite(c.ShrinkThreshold) || c.ShrinkThreshold < 0 || c.ShrinkThreshold*2 >= c.LoadFactor {
		return fmt.Errorf("shrink threshold %v: %w", c.ShrinkThreshold, ErrInvalidShrinkThreshold)
	}
	if c.MaxCapacity < MinCapacity {
		return &CapacityError{Op: "configure", Capacity: c.MaxCapacity, Err: ErrInvalidCapacity}
	}
	return checkCapacity("new", c.Capacity, c.MaxCapacity)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
