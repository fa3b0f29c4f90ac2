/*
Package chash provides an in-memory hash table for numeric keys using
separate chaining and automatic resizing.

Basic usage:

	import "github.com/theflywheel/chash"

	t, err := chash.New[int, string]()
	if err != nil {
		log.Fatal(err)
	}

	if err := t.Insert(42, "answer"); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Get(42); ok {
		fmt.Println("Value:", v)
	}

	t.Remove(42)

Features:

  - Average O(1) Insert, Get and Remove
  - Multiplicative hashing by default, xxHash64 via NewWithHasher(chash.XXHash[K])
  - Doubles when an insert finds size >= capacity × 0.75
  - Halves when a removal leaves size <= capacity × 0.25, never below 8 buckets
  - Explicit found flags: a stored zero value is distinguishable from a missing key
  - Not safe for concurrent use

Implementation Details:

The table is a slice of buckets, each a doubly linked chain of entries whose
keys hash to that index. The hash function takes the current capacity as an
argument, so the same key lands in a different bucket after a resize; every
resize therefore rehashes all entries into a freshly allocated slice and
replaces the old one. A failed resize leaves the table untouched.

When Insert adds a new key, the growth check runs before the key's bucket is
computed, so the key that pushes the table past its threshold is placed in
the grown slice. Overwriting an existing key never resizes.
*/
package chash
