package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"btreetable/btree"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
	}{
		{"full", "APPLE       a round fruit", "APPLE       ", "a round fruit"},
		{"crlf", "APPLE       a round fruit\r", "APPLE       ", "a round fruit"},
		{"key only", "PEAR", "PEAR        ", ""},
		{"exact key", "ABCDEFGHIJKL", "ABCDEFGHIJKL", ""},
		{"long value", "LONG        " + strings.Repeat("x", 50), "LONG        ", strings.Repeat("x", btree.ValueSize)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ReadLine([]byte(tt.line))
			if err != nil {
				t.Fatalf("ReadLine(%q): %v", tt.line, err)
			}
			if item.Key.String() != tt.wantKey {
				t.Errorf("key = %q, want %q", item.Key, tt.wantKey)
			}
			if item.Value.String() != tt.wantValue {
				t.Errorf("value = %q, want %q", item.Value, tt.wantValue)
			}
		})
	}
}

func TestLoadIntoTable(t *testing.T) {
	input := strings.Join([]string{
		"BANANA      yellow fruit",
		"",
		"APPLE       red fruit",
		"CARROT      orange root",
		"",
	}, "\n")

	pager := btree.NewInMemoryPager()
	b, err := btree.CreateWith(pager)
	if err != nil {
		t.Fatalf("CreateWith: %v", err)
	}

	n, err := Load(strings.NewReader(input), b)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 3 || b.Len() != 3 {
		t.Fatalf("Load inserted %d, table holds %d, want 3", n, b.Len())
	}

	item, found, err := b.Retrieve(btree.MustKey("APPLE       "))
	if err != nil || !found {
		t.Fatalf("Retrieve APPLE = %v, %v", found, err)
	}
	if item.Value.String() != "red fruit" {
		t.Errorf("APPLE = %q, want %q", item.Value, "red fruit")
	}
}

func TestLoadStopsAtDuplicate(t *testing.T) {
	input := "ONE         1\nTWO         2\nONE         again\nTHREE       3\n"

	b, err := btree.CreateWith(btree.NewInMemoryPager())
	if err != nil {
		t.Fatalf("CreateWith: %v", err)
	}

	n, err := Load(strings.NewReader(input), b)
	if !errors.Is(err, btree.ErrDuplicateKey) {
		t.Fatalf("Load error = %v, want ErrDuplicateKey", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
	if n != 2 {
		t.Errorf("Load inserted %d before failing, want 2", n)
	}
}

func TestLoadFileMissing(t *testing.T) {
	b, err := btree.CreateWith(btree.NewInMemoryPager())
	if err != nil {
		t.Fatalf("CreateWith: %v", err)
	}
	_, err = LoadFile(filepath.Join(t.TempDir(), "binput.dat"), b)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile error = %v, want not exist", err)
	}
}
