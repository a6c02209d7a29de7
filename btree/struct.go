// Structure of the B-tree table file
/*
File
 ├── Record 0: header (itemCount, nodeCount, root in Children[0..2])
 ├── Record 1..nodeCount: tree nodes
 │      └── Count | Keys[MaxKeys] (key + value) | Children[MaxKeys+1]

- keys: sorted ascending, unique
- Children[i] holds keys < Keys[i], Children[i+1] holds keys > Keys[i]
- Children[j] == NilRef means there is no subtree at that position
- every record has the same size, record r lives at byte offset r*RecordSize
- all leaves at same depth

*/
package btree

const (
	MaxKeys = 11 // max number of keys in a node
	MinKeys = 5  // min number of keys in a non-root node

	KeySize   = 12 // in bytes
	ValueSize = 36 // in bytes

	itemSize   = KeySize + ValueSize
	RecordSize = 4 + MaxKeys*itemSize + (MaxKeys+1)*8 // 628 bytes
)

// NodeRef is a pseudo-pointer: the ordinal of a node record in the table file.
type NodeRef int64

// NilRef marks the absence of a subtree.
const NilRef NodeRef = -1

// headerRef is the reserved record holding table-wide counters.
const headerRef NodeRef = 0

func (r NodeRef) IsNil() bool {
	return r == NilRef
}

func (r NodeRef) offset() int64 {
	return int64(r) * RecordSize
}

type Node struct {
	Count    int
	Keys     [MaxKeys]Item
	Children [MaxKeys + 1]NodeRef
}

// newNode returns an empty node whose children are all NilRef.
func newNode() Node {
	var n Node
	for i := range n.Children {
		n.Children[i] = NilRef
	}
	return n
}

// Stats is the header state of a table.
type Stats struct {
	Items int64   // number of items stored
	Nodes int64   // number of allocated nodes, header excluded
	Root  NodeRef // root node, NilRef for an empty table
}

// table is the engine shared by Builder and Reader. It owns the pager,
// the header values and one node-sized working buffer.
type table struct {
	pager  Pager
	stats  Stats
	cur    Node // node currently being examined
	closed bool
}
