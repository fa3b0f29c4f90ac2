package chash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a table is created or resized with
	// a capacity of zero or less.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrCapacityTooLarge is returned when a bucket array larger than the
	// configured maximum would have to be allocated.
	ErrCapacityTooLarge = errors.New("capacity exceeds maximum")

	// ErrInvalidLoadFactor is returned for a load factor that is not a
	// positive finite number.
	ErrInvalidLoadFactor = errors.New("load factor must be positive and finite")

	// ErrInvalidShrinkThreshold is returned for a shrink threshold outside
	// [0, load factor/2).
	ErrInvalidShrinkThreshold = errors.New("shrink threshold must be in [0, load factor/2)")
)

// CapacityError records the operation and capacity that caused a failed
// allocation of the bucket array.
type CapacityError struct {
	Op       string
	Capacity int
	Err      error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s with capacity %d: %v", e.Op, e.Capacity, e.Err)
}

func (e *CapacityError) Unwrap() error {
	return e.Err
}

func checkCapacity(op string, capacity, maxCapacity int) error {
	switch {
	case capacity <= 0:
		return &CapacityError{Op: op, Capacity: capacity, Err: ErrInvalidCapacity}
	case capacity > maxCapacity:
		return &CapacityError{Op: op, Capacity: capacity, Err: ErrCapacityTooLarge}
	}
	return nil
}
