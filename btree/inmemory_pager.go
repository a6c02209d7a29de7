package btree

import (
	"fmt"
)

// InMemoryPager keeps records in a map. Useful for tests and scratch tables.
type InMemoryPager struct {
	records map[NodeRef][]byte
	writes  int
	closed  bool
}

func NewInMemoryPager() *InMemoryPager {
	return &InMemoryPager{
		records: make(map[NodeRef][]byte),
	}
}

func (p *InMemoryPager) ReadRecord(ref NodeRef) ([]byte, error) {
	if p.closed {
		return nil, fmt.Errorf("pager is closed")
	}

	data, ok := p.records[ref]
	if !ok {
		return nil, fmt.Errorf("record %d not found", ref)
	}

	// Return a copy so the caller cannot modify internal state directly
	// without calling WriteRecord
	out := make([]byte, RecordSize)
	copy(out, data)
	return out, nil
}

func (p *InMemoryPager) WriteRecord(ref NodeRef, data []byte) error {
	if p.closed {
		return fmt.Errorf("pager is closed")
	}
	if ref < 0 {
		return fmt.Errorf("invalid record %d", ref)
	}
	if len(data) != RecordSize {
		return fmt.Errorf("data size %d does not match record size %d", len(data), RecordSize)
	}

	dest := make([]byte, RecordSize)
	copy(dest, data)
	p.records[ref] = dest
	p.writes++
	return nil
}

func (p *InMemoryPager) Sync() error {
	if p.closed {
		return fmt.Errorf("pager is closed")
	}
	return nil
}

// Close marks the pager closed but keeps the records, so a closed build
// session can be reopened for reading with Reopen.
func (p *InMemoryPager) Close() error {
	p.closed = true
	return nil
}

// Reopen makes a closed pager usable again.
func (p *InMemoryPager) Reopen() {
	p.closed = false
}

func (p *InMemoryPager) Size() (int64, error) {
	var max NodeRef = -1
	for ref := range p.records {
		if ref > max {
			max = ref
		}
	}
	return int64(max+1) * RecordSize, nil
}

// Writes reports how many records have been written.
func (p *InMemoryPager) Writes() int {
	return p.writes
}
