package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/theflywheel/chash"
)

func main() {
	capacity := flag.Int("capacity", chash.DefaultCapacity, "initial bucket count")
	hashName := flag.String("hash", "default", "hash function: default or xxhash")
	verbose := flag.Bool("verbose", false, "log resizes to stderr")
	repl := flag.Bool("repl", false, "read commands from stdin instead of running the demo")
	flag.Parse()

	table, err := newTable(*capacity, *hashName, *verbose)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	if *repl {
		runREPL(table, os.Stdin, os.Stdout)
		return
	}
	if err := runDemo(table); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func newTable(capacity int, hashName string, verbose bool) (*chash.Table[int, int], error) {
	var hash chash.HashFunc[int]
	switch hashName {
	case "default":
		hash = chash.DefaultHash[int]
	case "xxhash":
		hash = chash.XXHash[int]
	default:
		return nil, fmt.Errorf("unknown hash function %q", hashName)
	}

	options := []func(*chash.Config){chash.WithCapacity(capacity)}
	if verbose {
		options = append(options, chash.WithLogger(log.New(os.Stderr, "chash: ", log.LstdFlags)))
	}
	return chash.NewWithHasher[int, int](hash, options...)
}

func runDemo(table *chash.Table[int, int]) error {
	for i := 1; i <= 5; i++ {
		if err := table.Insert(i, i*100); err != nil {
			return fmt.Errorf("insert %d: %w", i, err)
		}
	}
	display(table)

	if v, ok := table.Get(3); ok {
		fmt.Println("\nValue for key 3:", v)
	} else {
		fmt.Println("\nKey 3 not found")
	}

	table.Remove(3)
	fmt.Println("\nAfter removing key 3:")
	display(table)

	for i := 6; i < 20; i++ {
		if err := table.Insert(i, i*10); err != nil {
			return fmt.Errorf("insert %d: %w", i, err)
		}
	}
	fmt.Println("\nAfter inserting more elements (resizing happens):")
	display(table)
	return nil
}

func display(table *chash.Table[int, int]) {
	fmt.Println("\nHash Table Contents:")
	if err := table.Dump(os.Stdout); err != nil {
		log.Printf("Failed to dump table: %v", err)
	}
}
