package btree

import (
	"encoding/binary"
	"fmt"
)

// encodeNode serializes a Node into one record.
// Format (little endian):
//   - count (4 bytes)
//   - MaxKeys slots of key (12 bytes, NUL padded) + value (36 bytes, NUL padded)
//   - MaxKeys+1 children (8 bytes each, NilRef stored as -1)
func encodeNode(node *Node) ([]byte, error) {
	if node.Count < 0 || node.Count > MaxKeys {
		return nil, fmt.Errorf("node count %d out of range [0, %d]", node.Count, MaxKeys)
	}

	record := make([]byte, RecordSize)
	offset := 0

	binary.LittleEndian.PutUint32(record[offset:], uint32(node.Count))
	offset += 4

	for i := 0; i < MaxKeys; i++ {
		// unused slots stay zeroed
		if i < node.Count {
			copy(record[offset:offset+KeySize], node.Keys[i].Key.Bytes())
			copy(record[offset+KeySize:offset+itemSize], node.Keys[i].Value.Bytes())
		}
		offset += itemSize
	}

	for i := 0; i <= MaxKeys; i++ {
		binary.LittleEndian.PutUint64(record[offset:], uint64(node.Children[i]))
		offset += 8
	}

	return record, nil
}

// decodeNode deserializes a record into node.
func decodeNode(record []byte, node *Node) error {
	if len(record) != RecordSize {
		return fmt.Errorf("record size mismatch: expected %d, got %d", RecordSize, len(record))
	}

	offset := 0
	count := binary.LittleEndian.Uint32(record[offset:])
	offset += 4
	if count > MaxKeys {
		return fmt.Errorf("%w: count %d exceeds %d", ErrCorruptNode, count, MaxKeys)
	}
	node.Count = int(count)

	for i := 0; i < MaxKeys; i++ {
		item := &node.Keys[i]
		*item = Item{}
		if i < node.Count {
			kb := record[offset : offset+KeySize]
			item.Key.n = uint8(copy(item.Key.buf[:], kb[:fieldLen(kb)]))
			vb := record[offset+KeySize : offset+itemSize]
			item.Value.n = uint8(copy(item.Value.buf[:], vb[:fieldLen(vb)]))
		}
		offset += itemSize
	}

	for i := 0; i <= MaxKeys; i++ {
		node.Children[i] = NodeRef(int64(binary.LittleEndian.Uint64(record[offset:])))
		offset += 8
	}

	return nil
}
