package linkedhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// The helpers below give callers a ready-made Element for a few common
// key shapes, so a caller with a plain string, byte slice, or int64 key
// doesn't have to hand-write Hash/Equal. Each wraps one of two
// independent hash families, grounded on u64.go's hashFunc0/hashFunc1
// pairing: xxhash for byte-oriented keys, xxh3 for the integer key.

// String is a ready-made Element wrapping a string key, hashed with
// xxhash. Two String values are Equal iff their Value fields are equal.
type String struct {
	Link
	Value string
}

// NewString returns a *String ready to Add.
func NewString(value string) *String {
	return &String{Value: value}
}

func (s *String) Hash() uint64 { return xxhash.Sum64String(s.Value) }

func (s *String) Equal(other Element) bool {
	o, ok := other.(*String)
	return ok && o.Value == s.Value
}

// Bytes is a ready-made Element wrapping a []byte key, hashed with
// xxhash. Equal compares the byte contents, not the slice identity.
type Bytes struct {
	Link
	Value []byte
}

// NewBytes returns a *Bytes ready to Add. The slice is stored as given,
// not copied; callers must not mutate it while it is linked.
func NewBytes(value []byte) *Bytes {
	return &Bytes{Value: value}
}

func (b *Bytes) Hash() uint64 { return xxhash.Sum64(b.Value) }

func (b *Bytes) Equal(other Element) bool {
	o, ok := other.(*Bytes)
	if !ok || len(o.Value) != len(b.Value) {
		return false
	}
	for i := range b.Value {
		if b.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}

// Int64 is a ready-made Element wrapping an int64 key, hashed with
// xxh3 over the key's little-endian byte encoding.
type Int64 struct {
	Link
	Value int64
}

// NewInt64 returns a *Int64 ready to Add.
func NewInt64(value int64) *Int64 {
	return &Int64{Value: value}
}

func (n *Int64) Hash() uint64 {
	var buf [8]byte
	u := uint64(n.Value)
	for i := range buf {
		buf[i] = byte(u >> (8 * i))
	}
	return xxh3.Hash(buf[:])
}

func (n *Int64) Equal(other Element) bool {
	o, ok := other.(*Int64)
	return ok && o.Value == n.Value
}
