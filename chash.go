package chash

import (
	"log"
)

// Table is a hash table with separate chaining over numeric keys. It grows
// by doubling when an insert finds it at its load factor and halves when a
// removal leaves it at or below its shrink threshold.
//
// A Table is not safe for concurrent use.
type Table[K Key, V any] struct {
	buckets         []bucket[K, V]
	size            int
	capacity        int
	loadFactor      float64
	shrinkThreshold float64
	maxCapacity     int
	hash            HashFunc[K]
	logger          *log.Logger
	stats           Stats
}

// New creates a table that uses DefaultHash.
//
// Parameters:
//   - WithCapacity option for the initial bucket count (default 8)
//   - WithLoadFactor / WithShrinkThreshold options for the resize policy
//   - WithMaxCapacity option to bound growth
//   - WithLogger option to trace resizes
func New[K Key, V any](options ...func(*Config)) (*Table[K, V], error) {
	return NewWithHasher[K, V](nil, options...)
}

// NewWithHasher creates a table with a custom hash function. A nil hash uses
// DefaultHash. Outputs outside [0, capacity) are folded back into range.
func NewWithHasher[K Key, V any](hash HashFunc[K], options ...func(*Config)) (*Table[K, V], error) {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if hash == nil {
		hash = DefaultHash[K]
	}

	return &Table[K, V]{
		buckets:         make([]bucket[K, V], cfg.Capacity),
		capacity:        cfg.Capacity,
		loadFactor:      cfg.LoadFactor,
		shrinkThreshold: cfg.ShrinkThreshold,
		maxCapacity:     cfg.MaxCapacity,
		hash:            hash,
		logger:          cfg.Logger,
	}, nil
}

// Len returns the number of keys stored.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int {
	return t.capacity
}

func (t *Table[K, V]) index(key K) int {
	return bucketIndex(t.hash(key, t.capacity), t.capacity)
}

// Insert adds key with value, or overwrites the value if key is present.
//
// Overwrites happen in place and never grow the table. For a new key the
// growth check runs first, against the size without that key, and the
// key's bucket is chosen afterwards, so the key that reaches the threshold
// is placed into the grown array.
// An error is returned only when growing fails; the table is then unchanged.
func (t *Table[K, V]) Insert(key K, value V) error {
	if e := t.buckets[t.index(key)].find(key); e != nil {
		e.value = value
		return nil
	}

	if float64(t.size) >= float64(t.capacity)*t.loadFactor {
		t.logf("Resize triggered at load factor %.2f (%d/%d)",
			float64(t.size)/float64(t.capacity), t.size, t.capacity)
		if err := t.Resize(t.capacity * 2); err != nil {
			return err
		}
		t.stats.Growths++
	}

	t.buckets[t.index(key)].append(key, value)
	t.size++
	return nil
}

// Get returns the value stored for key and whether it was present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if e := t.buckets[t.index(key)].find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Remove deletes key and reports whether it was present. A table above
// MinCapacity is halved when the removal leaves it at or below its shrink
// threshold.
func (t *Table[K, V]) Remove(key K) bool {
	if !t.buckets[t.index(key)].remove(key) {
		return false
	}
	t.size--

	if t.capacity > MinCapacity && float64(t.size) <= float64(t.capacity)*t.shrinkThreshold {
		t.logf("Shrink triggered at load factor %.2f (%d/%d)",
			float64(t.size)/float64(t.capacity), t.size, t.capacity)
		// capacity/2 is at least MinCapacity/2 and below the current
		// capacity, so this cannot fail.
		if err := t.Resize(t.capacity / 2); err == nil {
			t.stats.Shrinks++
		}
	}
	return true
}

// Resize rebuilds the table with newCapacity buckets, rehashing every entry
// against the new capacity. It fails with ErrInvalidCapacity when
// newCapacity <= 0 and with ErrCapacityTooLarge above the configured maximum;
// on failure the table is left as it was.
//
// Entries are replayed through Insert on a staging table, which is swapped
// in only once every entry has been placed. If newCapacity is too small to
// hold the entries under the load factor, the staging table grows while
// they are replayed and Cap ends up larger than newCapacity.
func (t *Table[K, V]) Resize(newCapacity int) error {
	if err := checkCapacity("resize", newCapacity, t.maxCapacity); err != nil {
		return err
	}
	t.logf("Starting resize: capacity=%d, size=%d, new capacity=%d",
		t.capacity, t.size, newCapacity)

	next := &Table[K, V]{
		buckets:         make([]bucket[K, V], newCapacity),
		capacity:        newCapacity,
		loadFactor:      t.loadFactor,
		shrinkThreshold: t.shrinkThreshold,
		maxCapacity:     t.maxCapacity,
		hash:            t.hash,
		logger:          t.logger,
	}
	for i := range t.buckets {
		for e := t.buckets[i].head; e != nil; e = e.next {
			if err := next.Insert(e.key, e.value); err != nil {
				return err
			}
		}
	}

	t.buckets = next.buckets
	t.capacity = next.capacity
	t.size = next.size
	t.logf("Resize complete: capacity=%d, size=%d", t.capacity, t.size)
	return nil
}

func (t *Table[K, V]) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}
