package wipe

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Pattern is the canonical erasure byte written over secret memory.
const Pattern byte = 0x00

const wordSize = unsafe.Sizeof(uintptr(0))

// patternWord is Pattern replicated across a machine word.
const patternWord uintptr = 0

// barrierSink is the target of the observable-effect barrier. Its value is
// meaningless; the atomic read-modify-write on it is what anchors and orders
// the preceding stores.
var barrierSink uint32

// Bytes overwrites every byte of b with Pattern. A nil or empty slice is a
// no-op. The write is a real, unelidable store: any later read through any
// alias of b observes the pattern, and no access can be reordered across it.
//
//go:noinline
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}

	Span(unsafe.Pointer(&b[0]), uintptr(len(b)))
	runtime.KeepAlive(b)
}

// Span overwrites the n bytes starting at p with Pattern. The caller must
// own writable memory for the whole extent and hold exclusive access for
// the duration of the call. A nil pointer or zero length is a no-op.
//
// The aligned body is written with atomic word stores, which the compiler
// may neither remove nor reorder; head and tail bytes go through
// unsafe.Add-derived pointers the optimizer cannot track to a dead store.
// The write is sealed with Barrier and followed by Registers.
//
//go:noinline
func Span(p unsafe.Pointer, n uintptr) {
	if p == nil || n == 0 {
		return
	}

	i := uintptr(0)

	for ; i < n && (uintptr(p)+i)%wordSize != 0; i++ {
		*(*byte)(unsafe.Add(p, i)) = Pattern
	}

	for ; i+wordSize <= n; i += wordSize {
		atomic.StoreUintptr((*uintptr)(unsafe.Add(p, i)), patternWord)
	}

	for ; i < n; i++ {
		*(*byte)(unsafe.Add(p, i)) = Pattern
	}

	Barrier()
	Registers()
}

// Barrier publishes all preceding stores. It is an atomic read-modify-write
// that no load or store may cross in either direction, so nothing hoisted
// above the erasure can observe pre-erasure bytes and nothing after it can
// be reordered before it. Bytes and Span call it internally; it is exported
// for callers layering their own raw writes on the same guarantee.
func Barrier() {
	atomic.AddUint32(&barrierSink, 1)
}
