package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"btreetable/btree"
	"btreetable/loader"
	"btreetable/query"
)

var (
	inputPath = flag.String("input", "binput.dat", "Fixed-width source file for the build session.")
	tablePath = flag.String("table", "btree.dat", "B-tree table file.")
	mode      = flag.String("mode", "both", "Session to run: make, read or both (make then read).")
	verbose   = flag.Bool("v", false, "Report build statistics and unreadable tables.")
	noCache   = flag.Bool("nocache", false, "Disable the lookup cache of the read session.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "\nB-tree table\n\nUsage: %s [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch *mode {
	case "make":
		if err := btmake(*inputPath, *tablePath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "read":
		if err := btread(*tablePath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "both":
		if err := btmake(*inputPath, *tablePath); err != nil {
			log.Fatalf("Error: %v", err)
		}
		if err := btread(*tablePath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// btmake builds the table from the source file. The table is closed, and
// its header written, whether or not the load succeeds.
func btmake(input, table string) (err error) {
	tbl, err := btree.Create(table)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, tbl.Close())
	}()

	n, err := loader.LoadFile(input, tbl)
	if err != nil {
		return fmt.Errorf("load %s after %d records: %w", input, n, err)
	}

	if *verbose {
		s := tbl.Stats()
		log.Printf("built %s: %d items in %d nodes, root %d", table, s.Items, s.Nodes, s.Root)
	}
	return nil
}

// btread answers lookups typed on stdin until "." or end of input.
func btread(table string) error {
	tbl := btree.Open(table)
	defer tbl.Close()

	if err := tbl.Degraded(); err != nil && *verbose {
		log.Printf("%s unreadable, treating table as empty: %v", table, err)
	}

	cfg := query.DefaultCacheConfig
	cfg.Disabled = *noCache
	session, err := query.NewSession(os.Stdin, os.Stdout, tbl, cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Run()
}
