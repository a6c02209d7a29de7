// Inspect a B-tree table file.
// Usage: go run ./cmd/inspect_idx <path-to-table>
// Example: go run ./cmd/inspect_idx btree.dat
package main

import (
	"fmt"
	"os"

	"btreetable/btree"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <table.dat>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s btree.dat\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]
	if err := btree.InspectFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
