package chash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Key is the set of key types a Table accepts. Both hash functions in this
// package interpret the key numerically.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// HashFunc maps a key to a bucket index in [0, capacity). It must be a pure
// function of its arguments: the table calls it again with the new capacity
// after every resize.
type HashFunc[K Key] func(key K, capacity int) int

// goldenFrac is the fractional part of the golden ratio (1/φ).
const goldenFrac = 0.61803398875

// DefaultHash is multiplicative hashing: the fractional part of
// key×0.61803398875, scaled by capacity and floored.
func DefaultHash[K Key](key K, capacity int) int {
	_, frac := math.Modf(float64(key) * goldenFrac)
	if frac < 0 {
		frac++
	}
	if math.IsNaN(frac) {
		frac = 0
	}
	return int(float64(capacity)*frac) % capacity
}

// XXHash hashes the key's 64-bit representation with xxHash64 and reduces
// it modulo capacity. Unlike DefaultHash it spreads keys whose magnitude
// exceeds float64 precision.
func XXHash[K Key](key K, capacity int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], keyBits(key))
	return int(xxhash.Sum64(buf[:]) % uint64(capacity))
}

// keyBits returns the raw IEEE-754 bits for float kinds and the two's
// complement bits for integer kinds. Both float zeros map to 0 since they
// compare equal.
func keyBits[K Key](key K) uint64 {
	half := K(1)
	half /= 2
	if half != 0 {
		if key == 0 {
			return 0
		}
		return math.Float64bits(float64(key))
	}
	return uint64(int64(key))
}

// bucketIndex folds out-of-range hash outputs back into [0, capacity).
func bucketIndex(i, capacity int) int {
	if i >= 0 && i < capacity {
		return i
	}
	i %= capacity
	if i < 0 {
		i += capacity
	}
	return i
}
