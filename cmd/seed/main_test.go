package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"btreetable/btree"
	"btreetable/loader"
)

func TestWriteRecordsLoadCleanly(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	n, err := writeRecords(w, 300)
	if err != nil {
		t.Fatalf("writeRecords: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if n != 300 {
		t.Fatalf("wrote %d records, want 300", n)
	}

	for i, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if len(line) < btree.KeySize || len(line) > btree.KeySize+btree.ValueSize {
			t.Fatalf("line %d has length %d: %q", i, len(line), line)
		}
	}

	b, err := btree.CreateWith(btree.NewInMemoryPager())
	if err != nil {
		t.Fatalf("CreateWith: %v", err)
	}
	loaded, err := loader.Load(&buf, b)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != n {
		t.Errorf("loaded %d records, want %d", loaded, n)
	}
	if err := b.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestFit(t *testing.T) {
	if got := fit("ABC", 5); got != "ABC  " {
		t.Errorf("fit pad = %q", got)
	}
	if got := fit("ABCDEFG", 5); got != "ABCDE" {
		t.Errorf("fit cut = %q", got)
	}
}
