package btree

import (
	"errors"
	"fmt"
)

// Table is what both sessions expose. Builder and Reader implement it.
type Table interface {
	Retrieve(key Key) (Item, bool, error)
	Len() int64
	Stats() Stats
	Verify() error
	Close() error
}

// Builder is a table opened in build mode: a fresh file that only grows
// through Insert. The header is persisted by Close.
type Builder struct {
	t table
}

// Reader is a table opened in query mode. It never writes.
type Reader struct {
	t        table
	degraded error
}

var (
	_ Table = (*Builder)(nil)
	_ Table = (*Reader)(nil)
)

// Create creates (or truncates) the table file at path and writes an empty
// header, so the file is valid even if nothing is ever inserted.
func Create(path string) (*Builder, error) {
	pager, err := CreateDiskPager(path)
	if err != nil {
		return nil, err
	}
	b, err := CreateWith(pager)
	if err != nil {
		pager.Close()
		return nil, err
	}
	return b, nil
}

// CreateWith starts a build session on an arbitrary pager.
func CreateWith(pager Pager) (*Builder, error) {
	b := &Builder{t: table{
		pager: pager,
		stats: Stats{Root: NilRef},
		cur:   newNode(),
	}}
	if err := b.t.writeHeader(); err != nil {
		return nil, err
	}
	return b, nil
}

// Open opens the table file at path read-only. Any failure to open the file
// or read a sane header yields an empty table instead of an error; the
// reason is available from Degraded.
func Open(path string) *Reader {
	pager, err := OpenDiskPager(path)
	if err != nil {
		return &Reader{
			t:        table{stats: Stats{Root: NilRef}, cur: newNode()},
			degraded: err,
		}
	}
	return OpenWith(pager)
}

// OpenWith starts a query session on an arbitrary pager.
func OpenWith(pager Pager) *Reader {
	r := &Reader{t: table{
		pager: pager,
		stats: Stats{Root: NilRef},
		cur:   newNode(),
	}}
	stats, err := r.t.readHeader()
	if err != nil {
		r.degraded = err
		return r
	}
	r.t.stats = stats
	return r
}

// Insert adds a new item. Inserting a key that is already present fails
// with ErrDuplicateKey and leaves the table unchanged.
func (b *Builder) Insert(item Item) error {
	if b.t.closed {
		return ErrClosed
	}
	return b.t.insert(item)
}

func (b *Builder) Retrieve(key Key) (Item, bool, error) {
	if b.t.closed {
		return Item{}, false, ErrClosed
	}
	return b.t.retrieve(key)
}

func (b *Builder) Len() int64   { return b.t.stats.Items }
func (b *Builder) Stats() Stats { return b.t.stats }

func (b *Builder) Verify() error {
	if b.t.closed {
		return ErrClosed
	}
	return b.t.verify()
}

// Close writes the final header and releases the file. It is safe to call
// more than once.
func (b *Builder) Close() error {
	if b.t.closed {
		return nil
	}
	b.t.closed = true

	herr := b.t.writeHeader()
	cerr := b.t.pager.Close()
	return errors.Join(herr, cerr)
}

func (r *Reader) Retrieve(key Key) (Item, bool, error) {
	if r.t.closed {
		return Item{}, false, ErrClosed
	}
	return r.t.retrieve(key)
}

func (r *Reader) Len() int64   { return r.t.stats.Items }
func (r *Reader) Stats() Stats { return r.t.stats }

func (r *Reader) Verify() error {
	if r.t.closed {
		return ErrClosed
	}
	return r.t.verify()
}

// Degraded returns why the table was opened as empty, or nil.
func (r *Reader) Degraded() error {
	return r.degraded
}

func (r *Reader) Close() error {
	if r.t.closed {
		return nil
	}
	r.t.closed = true
	if r.t.pager == nil {
		return nil
	}
	return r.t.pager.Close()
}

// readNode loads record ref into the working buffer.
func (t *table) readNode(ref NodeRef) error {
	if t.pager == nil {
		return fmt.Errorf("read node %d: no table file", ref)
	}
	record, err := t.pager.ReadRecord(ref)
	if err != nil {
		return err
	}
	if err := decodeNode(record, &t.cur); err != nil {
		return fmt.Errorf("decode node %d: %w", ref, err)
	}
	return nil
}

// readTreeNode is readNode for references taken from the tree, which must
// name an allocated node holding at least one key.
func (t *table) readTreeNode(ref NodeRef) error {
	if ref <= headerRef || int64(ref) > t.stats.Nodes {
		return fmt.Errorf("%w: reference %d outside [1, %d]", ErrCorruptNode, ref, t.stats.Nodes)
	}
	if err := t.readNode(ref); err != nil {
		return err
	}
	if t.cur.Count == 0 {
		return fmt.Errorf("%w: node %d has no keys", ErrCorruptNode, ref)
	}
	return nil
}

func (t *table) writeNode(ref NodeRef, node *Node) error {
	record, err := encodeNode(node)
	if err != nil {
		return fmt.Errorf("encode node %d: %w", ref, err)
	}
	return t.pager.WriteRecord(ref, record)
}

// appendNode allocates the next node reference and writes node there.
func (t *table) appendNode(node *Node) (NodeRef, error) {
	ref := NodeRef(t.stats.Nodes + 1)
	if err := t.writeNode(ref, node); err != nil {
		return NilRef, err
	}
	t.stats.Nodes++
	return ref, nil
}

// Node zero is not a normal node, it holds the header in its first three
// child slots.
func (t *table) writeHeader() error {
	header := newNode()
	header.Children[0] = NodeRef(t.stats.Items)
	header.Children[1] = NodeRef(t.stats.Nodes)
	header.Children[2] = t.stats.Root
	if err := t.writeNode(headerRef, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

type sizer interface {
	Size() (int64, error)
}

func (t *table) readHeader() (Stats, error) {
	if err := t.readNode(headerRef); err != nil {
		return Stats{}, fmt.Errorf("read header: %w", err)
	}
	s := Stats{
		Items: int64(t.cur.Children[0]),
		Nodes: int64(t.cur.Children[1]),
		Root:  t.cur.Children[2],
	}

	switch {
	case s.Items < 0 || s.Nodes < 0:
		return Stats{}, fmt.Errorf("%w: negative header counts %d/%d", ErrCorruptNode, s.Items, s.Nodes)
	case s.Root.IsNil() && (s.Items != 0 || s.Nodes != 0):
		return Stats{}, fmt.Errorf("%w: empty root with %d items", ErrCorruptNode, s.Items)
	case !s.Root.IsNil() && (s.Root < 1 || int64(s.Root) > s.Nodes):
		return Stats{}, fmt.Errorf("%w: root %d outside [1, %d]", ErrCorruptNode, s.Root, s.Nodes)
	}

	if sz, ok := t.pager.(sizer); ok {
		size, err := sz.Size()
		if err != nil {
			return Stats{}, err
		}
		if want := (s.Nodes + 1) * RecordSize; size < want {
			return Stats{}, fmt.Errorf("%w: file has %d bytes, header needs %d", ErrCorruptNode, size, want)
		}
	}
	return s, nil
}
