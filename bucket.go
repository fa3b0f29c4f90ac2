package chash

// entry is a node in a bucket chain. next owns the successor; prev is only a
// back-reference used to unlink in place.
type entry[K Key, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// bucket is the chain of entries whose keys hash to the same index.
// It does not check for duplicate keys; the table finds before appending.
type bucket[K Key, V any] struct {
	head   *entry[K, V]
	tail   *entry[K, V]
	length int
}

func (b *bucket[K, V]) append(key K, value V) {
	e := &entry[K, V]{key: key, value: value, prev: b.tail}
	if b.tail == nil {
		b.head = e
	} else {
		b.tail.next = e
	}
	b.tail = e
	b.length++
}

func (b *bucket[K, V]) find(key K) *entry[K, V] {
	for e := b.head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

func (b *bucket[K, V]) remove(key K) bool {
	e := b.find(key)
	if e == nil {
		return false
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		b.tail = e.prev
	}
	e.prev, e.next = nil, nil
	b.length--
	return true
}
