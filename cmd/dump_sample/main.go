// dump_sample runs the seed and the build session, then inspects the table,
// writing all output to cmd/sample_run_output.txt. Run from repo root:
// go run ./cmd/dump_sample
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"btreetable/btree"
)

const (
	sampleDir  = "sample"
	outputFile = "cmd/sample_run_output.txt"
)

func main() {
	outPath := outputFile
	// If run from cmd/dump_sample, output next to binary
	if _, err := os.Stat("cmd"); os.IsNotExist(err) {
		outPath = "sample_run_output.txt"
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	root := repoRoot()
	dir := filepath.Join(root, sampleDir)
	// Clean previous run so seed starts fresh
	os.RemoveAll(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", dir, err)
		os.Exit(1)
	}
	input := filepath.Join(dir, "binput.dat")
	table := filepath.Join(dir, "btree.dat")

	steps := []struct {
		title string
		args  []string
	}{
		{"SEED (generate source records)", []string{"run", "./cmd/seed", "-out", input, "-records", "200"}},
		{"MAKE (build the table)", []string{"run", ".", "-mode", "make", "-v", "-input", input, "-table", table}},
	}
	for _, step := range steps {
		fmt.Fprintf(f, "========== %s ==========\n", step.title)
		cmd := exec.Command("go", step.args...)
		cmd.Stdout = f
		cmd.Stderr = f
		cmd.Dir = root
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(f, "%s exited with error: %v\n", step.title, err)
		}
	}

	fmt.Fprintf(f, "\n========== INSPECT %s ==========\n", table)
	if err := btree.InspectFileTo(f, table); err != nil {
		fmt.Fprintf(f, "inspect error: %v\n", err)
	}

	fmt.Printf("Output written to %s\n", outPath)
}

func repoRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
