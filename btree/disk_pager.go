package btree

import (
	"fmt"
	"os"
)

// OnDiskPager implements the Pager interface on a single table file.
type OnDiskPager struct {
	file     *os.File
	filePath string
	readOnly bool
}

// CreateDiskPager creates the table file, truncating any previous content.
func CreateDiskPager(path string) (*OnDiskPager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file %s: %w", path, err)
	}
	return &OnDiskPager{file: file, filePath: path}, nil
}

// OpenDiskPager opens an existing table file for reading only.
func OpenDiskPager(path string) (*OnDiskPager, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file %s: %w", path, err)
	}
	return &OnDiskPager{file: file, filePath: path, readOnly: true}, nil
}

// ReadRecord reads the full record at ref. A short read is an error.
func (p *OnDiskPager) ReadRecord(ref NodeRef) ([]byte, error) {
	if p.file == nil {
		return nil, fmt.Errorf("pager file is closed")
	}
	if ref < 0 {
		return nil, fmt.Errorf("invalid record %d", ref)
	}

	record := make([]byte, RecordSize)
	n, err := p.file.ReadAt(record, ref.offset())
	if n < RecordSize {
		if err == nil {
			err = fmt.Errorf("short read")
		}
		return nil, fmt.Errorf("failed to read record %d (%d/%d bytes): %w", ref, n, RecordSize, err)
	}
	return record, nil
}

// WriteRecord writes data, which must be exactly RecordSize bytes, at ref.
func (p *OnDiskPager) WriteRecord(ref NodeRef, data []byte) error {
	if p.file == nil {
		return fmt.Errorf("pager file is closed")
	}
	if p.readOnly {
		return fmt.Errorf("pager for %s is read-only", p.filePath)
	}
	if ref < 0 {
		return fmt.Errorf("invalid record %d", ref)
	}
	if len(data) != RecordSize {
		return fmt.Errorf("data size %d does not match record size %d", len(data), RecordSize)
	}

	if _, err := p.file.WriteAt(data, ref.offset()); err != nil {
		return fmt.Errorf("failed to write record %d: %w", ref, err)
	}
	return nil
}

func (p *OnDiskPager) Sync() error {
	if p.file == nil {
		return fmt.Errorf("pager file is closed")
	}
	if p.readOnly {
		return nil
	}
	return p.file.Sync()
}

// Close flushes (in write mode) and closes the file. Closing twice is a no-op.
func (p *OnDiskPager) Close() error {
	if p.file == nil {
		return nil
	}

	if !p.readOnly {
		if err := p.file.Sync(); err != nil {
			p.file.Close()
			p.file = nil
			return fmt.Errorf("failed to sync before close: %w", err)
		}
	}

	err := p.file.Close()
	p.file = nil
	return err
}

// Size returns the current file size in bytes.
func (p *OnDiskPager) Size() (int64, error) {
	if p.file == nil {
		return 0, fmt.Errorf("pager file is closed")
	}
	stat, err := p.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat table file: %w", err)
	}
	return stat.Size(), nil
}

func (p *OnDiskPager) Path() string {
	return p.filePath
}
