package vm

import "strings"

// InlineCap is the longest byte sequence a LossyStr stores without
// touching the heap.
const InlineCap = 23

// LossyStr is an immutable byte sequence with small-string
// optimization: sequences up to InlineCap bytes live inline in the
// value, longer ones live in a heap buffer shared by every copy of the
// value. The heap buffer is never written after construction; that
// invariant is what makes the aliasing safe.
//
// The bytes are not required to be valid UTF-8. String() renders them
// lossily for display.
type LossyStr struct {
	length int
	inline [InlineCap]byte
	heap   []byte // set only when length > InlineCap; immutable
}

// NewLossyStr builds a LossyStr from raw bytes. The input is copied;
// the caller may keep mutating its slice.
func NewLossyStr(b []byte) LossyStr {
	s := LossyStr{length: len(b)}
	if len(b) <= InlineCap {
		copy(s.inline[:], b)
	} else {
		s.heap = append([]byte(nil), b...)
	}
	return s
}

// LossyStrOf builds a LossyStr from a Go string.
func LossyStrOf(text string) LossyStr {
	return NewLossyStr([]byte(text))
}

// Bytes returns the underlying byte sequence. Callers must not modify
// the returned slice.
func (s LossyStr) Bytes() []byte {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.length]
}

// Len returns the number of bytes.
func (s LossyStr) Len() int {
	return s.length
}

// String renders the bytes as text, replacing invalid UTF-8 with the
// replacement character.
func (s LossyStr) String() string {
	return strings.ToValidUTF8(string(s.Bytes()), "�")
}
