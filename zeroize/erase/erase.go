package erase

import (
	"runtime"
	"unsafe"

	"github.com/LerianStudio/lib-zeroize/zeroize"
	"github.com/LerianStudio/lib-zeroize/zeroize/wipe"
)

// Primitive constrains the scalar types whose storage can be erased by a raw
// byte overwrite. Erasing one leaves the type's zero value (0, false, NUL).
type Primitive interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Scalar erases the value at p to its type's zero value. A nil pointer is a
// no-op.
func Scalar[T Primitive](p *T) {
	if p == nil {
		return
	}

	wipe.Span(unsafe.Pointer(p), unsafe.Sizeof(*p))
}

// Bytes overwrites every byte of b with the erasure pattern. Nil and empty
// slices are no-ops. The slice stays structurally valid: length and capacity
// are unchanged, contents are zero.
func Bytes(b []byte) {
	wipe.Bytes(b)
}

// Slice erases every element of s, covering indexes 0..len(s) in one pass
// over the backing storage. Fixed-size arrays are erased through their slice
// form, Slice(a[:]).
func Slice[T Primitive](s []T) {
	if len(s) == 0 {
		return
	}

	wipe.Span(unsafe.Pointer(&s[0]), unsafe.Sizeof(s[0])*uintptr(len(s)))
	runtime.KeepAlive(s)
}

// Option erases the value behind a possibly-nil pointer. The absent (nil)
// state is a no-op.
func Option[T any, P interface {
	*T
	zeroize.Erasable
}](p P) {
	if p != nil {
		p.Erase()
	}
}
