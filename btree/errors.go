package btree

import "errors"

var (
	ErrDuplicateKey = errors.New("attempt to put a duplicate into B-tree")
	ErrKeyTooLong   = errors.New("key too long")
	ErrValueTooLong = errors.New("value too long")
	ErrInvalidField = errors.New("field contains a NUL byte")
	ErrNodeFull     = errors.New("node is full")
	ErrCorruptNode  = errors.New("corrupt node")
	ErrClosed       = errors.New("table is closed")
)
