package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/theflywheel/chash"
)

func runREPL(table *chash.Table[int, int], in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Type 'help' for available commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			break
		}
		processCommand(table, input, out)
	}
	fmt.Fprintln(out)
}

func processCommand(table *chash.Table[int, int], input string, out io.Writer) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case "insert", "set":
		if len(parts) != 3 {
			fmt.Fprintln(out, "Usage: INSERT key value")
			return
		}
		key, value, err := parseInts(parts[1], parts[2])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		if err := table.Insert(key, value); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(out, "OK")

	case "get":
		if len(parts) != 2 {
			fmt.Fprintln(out, "Usage: GET key")
			return
		}
		key, err := parseKey(parts[1])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		if v, ok := table.Get(key); ok {
			fmt.Fprintln(out, v)
		} else {
			fmt.Fprintln(out, "(not found)")
		}

	case "remove", "delete":
		if len(parts) != 2 {
			fmt.Fprintln(out, "Usage: REMOVE key")
			return
		}
		key, err := parseKey(parts[1])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		if table.Remove(key) {
			fmt.Fprintln(out, "OK")
		} else {
			fmt.Fprintln(out, "(not found)")
		}

	case "dump":
		if err := table.Dump(out); err != nil {
			log.Printf("Failed to dump table: %v", err)
		}

	case "size":
		fmt.Fprintf(out, "Size: %d entries, capacity: %d buckets\n", table.Len(), table.Cap())

	case "stats":
		s := table.Stats()
		fmt.Fprintf(out, "Growths: %d, shrinks: %d\n", s.Growths, s.Shrinks)

	case "help":
		printHelp(out)

	default:
		fmt.Fprintln(out, "Unknown command. Type 'help' for available commands.")
	}
}

func parseKey(key string) (int, error) {
	k, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q", key)
	}
	return k, nil
}

func parseInts(key, value string) (int, int, error) {
	k, err := parseKey(key)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q", value)
	}
	return k, v, nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Available commands:")
	fmt.Fprintln(out, "  INSERT key value  - Store a key-value pair")
	fmt.Fprintln(out, "  GET key           - Retrieve a value by key")
	fmt.Fprintln(out, "  REMOVE key        - Remove a key")
	fmt.Fprintln(out, "  DUMP              - Print every bucket")
	fmt.Fprintln(out, "  SIZE              - Show entry and bucket counts")
	fmt.Fprintln(out, "  STATS             - Show resize counts")
	fmt.Fprintln(out, "  HELP              - Show this help")
	fmt.Fprintln(out, "  EXIT/QUIT         - Exit the program")
}
