package zeroize

// Erasable is the capability implemented by values whose byte representation
// may hold secret material.
//
// Erase overwrites every logically-secret byte of the receiver with the
// erasure pattern (zero), leaving the value structurally valid and logically
// empty: numeric values become 0, buffers become length-zero with their
// allocation retained. Erase never fails and is idempotent; a second call is
// a harmless no-op, never a double free.
//
// Implementations assume exclusive access to the receiver for the duration
// of the call. Types that cannot be erased safely (for example, holders of
// non-owned external handles) must simply not implement the interface.
type Erasable interface {
	Erase()
}
