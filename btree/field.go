package btree

import (
	"bytes"
	"fmt"
)

// Key is a fixed 12-byte field with an explicit logical length.
type Key struct {
	buf [KeySize]byte
	n   uint8
}

// Value is a fixed 36-byte field with an explicit logical length.
type Value struct {
	buf [ValueSize]byte
	n   uint8
}

type Item struct {
	Key   Key
	Value Value
}

func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) > KeySize {
		return k, fmt.Errorf("%w: %d bytes (max: %d)", ErrKeyTooLong, len(b), KeySize)
	}
	if bytes.IndexByte(b, 0) >= 0 {
		return k, fmt.Errorf("key %q: %w", b, ErrInvalidField)
	}
	k.n = uint8(copy(k.buf[:], b))
	return k, nil
}

func NewValue(b []byte) (Value, error) {
	var v Value
	if len(b) > ValueSize {
		return v, fmt.Errorf("%w: %d bytes (max: %d)", ErrValueTooLong, len(b), ValueSize)
	}
	if bytes.IndexByte(b, 0) >= 0 {
		return v, fmt.Errorf("value %q: %w", b, ErrInvalidField)
	}
	v.n = uint8(copy(v.buf[:], b))
	return v, nil
}

func NewItem(key, value []byte) (Item, error) {
	k, err := NewKey(key)
	if err != nil {
		return Item{}, err
	}
	v, err := NewValue(value)
	if err != nil {
		return Item{}, err
	}
	return Item{Key: k, Value: v}, nil
}

// MustKey is NewKey for literals; it panics on invalid input.
func MustKey(s string) Key {
	k, err := NewKey([]byte(s))
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) Bytes() []byte  { return k.buf[:k.n] }
func (k Key) String() string { return string(k.buf[:k.n]) }
func (k Key) Len() int       { return int(k.n) }

// Compare orders keys byte-wise, shorter prefixes first.
func (k Key) Compare(other Key) int {
	return bytes.Compare(k.Bytes(), other.Bytes())
}

func (v Value) Bytes() []byte  { return v.buf[:v.n] }
func (v Value) String() string { return string(v.buf[:v.n]) }
func (v Value) Len() int       { return int(v.n) }

// fieldLen is the logical length of a NUL-padded on-disk field.
func fieldLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}
