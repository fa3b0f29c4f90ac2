package chash

import "iter"

// All returns an iterator over the table's key-value pairs in bucket order.
// The order is unspecified and changes across resizes. The table must not
// be modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Range(yield)
	}
}

// Keys returns an iterator over the table's keys.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range calls f for each key-value pair until f returns false.
func (t *Table[K, V]) Range(f func(key K, value V) bool) {
	for i := range t.buckets {
		for e := t.buckets[i].head; e != nil; e = e.next {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}
