// Package loader reads the fixed-width ingestion format and feeds a table.
//
// Each line holds a key in its first 12 bytes (blank padded, typically an
// upper-case word) followed by up to 36 bytes of value.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"btreetable/btree"
)

// Inserter is the part of a build-mode table the loader needs.
type Inserter interface {
	Insert(item btree.Item) error
}

// ReadLine splits one line (without its newline) into an item. Lines
// shorter than the key field are padded with blanks, values longer than
// the value field are cut.
func ReadLine(line []byte) (btree.Item, error) {
	line = bytes.TrimSuffix(line, []byte("\r"))

	key := make([]byte, btree.KeySize)
	n := copy(key, line)
	for i := n; i < btree.KeySize; i++ {
		key[i] = ' '
	}

	var value []byte
	if len(line) > btree.KeySize {
		value = line[btree.KeySize:]
		if len(value) > btree.ValueSize {
			value = value[:btree.ValueSize]
		}
	}

	return btree.NewItem(key, value)
}

// Load inserts every record of r into ins in source order and returns how
// many were inserted. Blank lines are skipped. It stops at the first error.
func Load(r io.Reader, ins Inserter) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		item, err := ReadLine(line)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := ins.Insert(item); err != nil {
			return count, fmt.Errorf("line %d: %w", lineNo, err)
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read input: %w", err)
	}
	return count, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string, ins Inserter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, ins)
}
