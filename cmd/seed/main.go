// Seed program: writes a fixed-width source file of fake dictionary entries.
// Run: go run ./cmd/seed -records 500
// Then build and query it: go run . -input binput.dat
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-faker/faker/v4"

	"btreetable/btree"
)

var (
	outPath    = flag.String("out", "binput.dat", "File to write the records to.")
	numRecords = flag.Int("records", 1000, "Amount of records to generate.")
)

func main() {
	flag.Usage = func() {
		fmt.Println("\nSeed\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n, err := writeRecords(w, *numRecords)
	if err != nil {
		log.Fatalf("write records: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("flush %s: %v", *outPath, err)
	}

	fmt.Printf("Wrote %d records to %s\n", n, *outPath)
}

// writeRecords emits up to count lines with unique keys; keys are never
// repeated because a duplicate aborts the build session.
func writeRecords(w *bufio.Writer, count int) (int, error) {
	seen := make(map[string]bool, count)
	written := 0

	for attempts := 0; written < count; attempts++ {
		if attempts > 100*count {
			return written, fmt.Errorf("ran out of unique words after %d records", written)
		}

		word := strings.ToUpper(faker.Word())
		if attempts >= count {
			// single words run out quickly, pair them up
			word += strings.ToUpper(faker.Word())
		}
		key := fit(word, btree.KeySize)
		if seen[key] {
			continue
		}
		seen[key] = true

		definition := strings.TrimSpace(fit(faker.Sentence(), btree.ValueSize))
		if _, err := fmt.Fprintf(w, "%s%s\n", key, definition); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// fit cuts or blank-pads s to exactly n bytes.
func fit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}
