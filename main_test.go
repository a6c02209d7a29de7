package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"btreetable/btree"
)

func writeInput(t *testing.T, dir string, lines string) string {
	t.Helper()
	path := filepath.Join(dir, "binput.dat")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestBtmake(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "APPLE       fruit\nBANANA      fruit2\nCARROT      veg\n")
	table := filepath.Join(dir, "btree.dat")

	if err := btmake(input, table); err != nil {
		t.Fatalf("btmake: %v", err)
	}

	r := btree.Open(table)
	defer r.Close()
	item, found, err := r.Retrieve(btree.MustKey("APPLE       "))
	if err != nil || !found || item.Value.String() != "fruit" {
		t.Errorf("Retrieve APPLE = %q, %v, %v", item.Value, found, err)
	}
}

func TestBtmakeDuplicateKeepsCommittedKeys(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "APPLE       fruit\nBANANA      fruit2\nAPPLE       again\nCARROT      veg\n")
	table := filepath.Join(dir, "btree.dat")

	err := btmake(input, table)
	if !errors.Is(err, btree.ErrDuplicateKey) {
		t.Fatalf("btmake error = %v, want ErrDuplicateKey", err)
	}

	r := btree.Open(table)
	defer r.Close()
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	for key, want := range map[string]string{"APPLE       ": "fruit", "BANANA      ": "fruit2"} {
		item, found, err := r.Retrieve(btree.MustKey(key))
		if err != nil || !found || item.Value.String() != want {
			t.Errorf("Retrieve(%q) = %q, %v, %v; want %q", key, item.Value, found, err, want)
		}
	}
	if _, found, _ := r.Retrieve(btree.MustKey("CARROT      ")); found {
		t.Errorf("CARROT found, the build should have stopped before it")
	}
}

func TestBtmakeMissingInput(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "btree.dat")

	if err := btmake(filepath.Join(dir, "nope.dat"), table); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("btmake error = %v, want not exist", err)
	}

	r := btree.Open(table)
	defer r.Close()
	if err := r.Degraded(); err != nil {
		t.Errorf("table left by failed build is unreadable: %v", err)
	}
}
