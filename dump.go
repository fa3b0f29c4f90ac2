package chash

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stats counts the resizes a table has performed on its own.
type Stats struct {
	Growths int
	Shrinks int
}

// Stats returns the automatic grow and shrink counts. Explicit Resize calls
// are not counted.
func (t *Table[K, V]) Stats() Stats {
	return t.stats
}

// Dump writes one line per bucket in index order, listing entries in chain
// order:
//
//	Bucket 0: (8: 800) <-> (3: 300) <-> None
//	Bucket 1: None
//
// The format is meant for people and may change.
func (t *Table[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range t.buckets {
		fmt.Fprintf(bw, "Bucket %d: ", i)
		for e := t.buckets[i].head; e != nil; e = e.next {
			fmt.Fprintf(bw, "(%v: %v) <-> ", e.key, e.value)
		}
		bw.WriteString("None\n")
	}
	return bw.Flush()
}

func (t *Table[K, V]) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
