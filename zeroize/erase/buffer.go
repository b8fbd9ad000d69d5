package erase

import (
	"github.com/LerianStudio/lib-zeroize/zeroize/wipe"
)

// Buffer is a growable byte buffer for secret material. It implements
// io.Writer and zeroize.Erasable. When the buffer grows, the old backing
// array is wiped before it is released to the garbage collector, so no
// stale copy of the contents survives a reallocation.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}

	return &Buffer{buf: make([]byte, 0, capacity)}
}

// NewBufferFrom returns a Buffer holding a copy of b. The source slice is
// left untouched; callers that own it should erase it themselves.
func NewBufferFrom(b []byte) *Buffer {
	buf := make([]byte, len(b))
	copy(buf, b)

	return &Buffer{buf: buf}
}

// Write appends p to the buffer, growing it as needed. It never fails; the
// error return satisfies io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)

	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)

	return len(s), nil
}

// Bytes returns the occupied bytes. The slice aliases the buffer's storage;
// it is valid until the next Write or Erase.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of occupied bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the buffer's capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Erase wipes the buffer's full capacity (occupied bytes and any residue in
// the spare region) and truncates the logical length to zero. The allocation
// is retained, so the buffer remains valid and reusable.
func (b *Buffer) Erase() {
	if b == nil || cap(b.buf) == 0 {
		return
	}

	wipe.Bytes(b.buf[:cap(b.buf)])
	b.buf = b.buf[:0]
}

// grow ensures capacity for n more bytes, wiping the old backing array
// before it is released when a reallocation is needed.
func (b *Buffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}

	capacity := 2 * cap(b.buf)
	if capacity < need {
		capacity = need
	}

	next := make([]byte, len(b.buf), capacity)
	copy(next, b.buf)
	wipe.Bytes(b.buf[:cap(b.buf)])
	b.buf = next
}

// String is a mutable text buffer backed by owned bytes. Go string values
// are immutable and may alias read-only storage, so they cannot be wiped in
// place; String owns its bytes and can. It implements zeroize.Erasable.
type String struct {
	buf []byte
}

// NewString returns a String holding a copy of s.
func NewString(s string) *String {
	return &String{buf: []byte(s)}
}

// Set replaces the contents. The previous contents are wiped first, and the
// allocation is reused when it is large enough.
func (s *String) Set(v string) {
	if cap(s.buf) >= len(v) {
		wipe.Bytes(s.buf[:cap(s.buf)])
		s.buf = append(s.buf[:0], v...)

		return
	}

	old := s.buf
	s.buf = []byte(v)
	wipe.Bytes(old[:cap(old)])
}

// Bytes returns the text as a byte view aliasing the owned storage. Prefer
// this over String for anything that is itself secret.
func (s *String) Bytes() []byte {
	return s.buf
}

// String returns the text as an ordinary Go string. The returned string is
// an unmanaged copy outside the erasure guarantee.
func (s *String) String() string {
	return string(s.buf)
}

// Len returns the text length in bytes.
func (s *String) Len() int {
	return len(s.buf)
}

// Erase wipes the full capacity and truncates to empty, retaining the
// allocation.
func (s *String) Erase() {
	if s == nil || cap(s.buf) == 0 {
		return
	}

	wipe.Bytes(s.buf[:cap(s.buf)])
	s.buf = s.buf[:0]
}
