package btree

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestInspectFileTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.dat")
	b, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 25; i++ {
		insertAll(t, b, []Item{mustItem(t, fmt.Sprintf("I%02d", i), "v")})
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var out bytes.Buffer
	if err := InspectFileTo(&out, path); err != nil {
		t.Fatalf("InspectFileTo: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Record 0 (header): items = 25",
		"Level 0:",
		"Level 1:",
		`"I00"`,
		"Digest (xxhash64):",
		"Verify: ok",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("inspect output missing %q:\n%s", want, text)
		}
	}
}

func TestInspectEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	b, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var out bytes.Buffer
	if err := InspectFileTo(&out, path); err != nil {
		t.Fatalf("InspectFileTo: %v", err)
	}
	if !strings.Contains(out.String(), "(empty tree)") {
		t.Errorf("inspect output = %q, want empty tree", out.String())
	}
}
