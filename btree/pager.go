package btree

// Pager is the record store: fixed-size node records addressed by NodeRef.
// Every read and write moves a whole RecordSize record.
type Pager interface {
	ReadRecord(ref NodeRef) ([]byte, error)
	WriteRecord(ref NodeRef, data []byte) error
	Sync() error
	Close() error
}
