// Package query runs the interactive lookup protocol against a table opened
// in query mode.
package query

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/fatih/color"

	"btreetable/btree"
)

const (
	Prompt   = "Enter the word to be looked up (or . to quit): "
	QuitWord = "."
)

// CacheConfig sizes the lookup cache. A query-mode table never changes, so
// answers can be reused for the whole session.
type CacheConfig struct {
	MaxEntries int64
	Disabled   bool
}

var DefaultCacheConfig = CacheConfig{MaxEntries: 1024}

type result struct {
	item  btree.Item
	found bool
}

type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	table   btree.Table
	cache   *ristretto.Cache[string, result]

	definition *color.Color
	notFound   *color.Color
}

// NewSession prepares a session reading whitespace separated words from in
// and writing answers to out.
func NewSession(in io.Reader, out io.Writer, table btree.Table, cfg CacheConfig) (*Session, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	s := &Session{
		scanner:    scanner,
		out:        out,
		table:      table,
		definition: color.New(color.FgGreen),
		notFound:   color.New(color.FgRed),
	}

	if !cfg.Disabled {
		if cfg.MaxEntries <= 0 {
			cfg.MaxEntries = DefaultCacheConfig.MaxEntries
		}
		cache, err := ristretto.NewCache(&ristretto.Config[string, result]{
			NumCounters: cfg.MaxEntries * 10,
			MaxCost:     cfg.MaxEntries,
			BufferItems: 64,
			// cost is one per entry
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, fmt.Errorf("create lookup cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// NormalizeKey turns a typed word into a key: upper-cased and padded with
// blanks (or cut) to the key field width. It reports false for the quit word.
func NormalizeKey(token string) (btree.Key, bool) {
	if token == QuitWord {
		return btree.Key{}, false
	}

	word := []byte(token)
	if i := bytes.IndexByte(word, 0); i >= 0 {
		word = word[:i]
	}
	if len(word) > btree.KeySize {
		word = word[:btree.KeySize]
	}

	buf := bytes.Repeat([]byte{' '}, btree.KeySize)
	for i, ch := range word {
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		buf[i] = ch
	}

	key, err := btree.NewKey(buf)
	if err != nil {
		// buf is exactly KeySize bytes without NUL
		panic(err)
	}
	return key, true
}

// Run prompts, answers each word, and returns when the quit word is read or
// the input ends.
func (s *Session) Run() error {
	fmt.Fprint(s.out, Prompt)

	for s.scanner.Scan() {
		key, ok := NormalizeKey(s.scanner.Text())
		if !ok {
			return nil
		}

		res, err := s.lookup(key)
		if err != nil {
			return err
		}
		if res.found {
			s.definition.Fprintf(s.out, " Definition:   %s\n", res.item.Value)
		} else {
			s.notFound.Fprintln(s.out, " Not found")
		}
		fmt.Fprint(s.out, "\n"+Prompt)
	}

	return s.scanner.Err()
}

func (s *Session) lookup(key btree.Key) (result, error) {
	if s.cache != nil {
		if res, ok := s.cache.Get(key.String()); ok {
			return res, nil
		}
	}

	item, found, err := s.table.Retrieve(key)
	if err != nil {
		return result{}, fmt.Errorf("lookup %q: %w", key.String(), err)
	}
	res := result{item: item, found: found}

	if s.cache != nil {
		s.cache.Set(key.String(), res, 1)
		s.cache.Wait()
	}
	return res, nil
}

// Close releases the cache. The table is owned by the caller.
func (s *Session) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}
