package guard

import (
	"runtime"
	"sync/atomic"

	"github.com/LerianStudio/lib-zeroize/zeroize"
)

// Guard owns a single value and guarantees it is erased exactly once when
// the guard is destroyed. Access during the guard's lifetime goes through
// Value, which permits in-place mutation without moving ownership out.
//
// A finalizer backstops guards that are never destroyed: the garbage
// collector will erase the value eventually. That is best effort with no
// timing guarantee; deterministic erasure still requires defer Destroy.
type Guard[T any] struct {
	value T
	erase func(*T)
	done  atomic.Bool
}

// New takes ownership of v, whose pointer type must implement
// zeroize.Erasable:
//
//	g := guard.New[erase.Buffer](buf)
//	defer g.Destroy()
func New[T any, P interface {
	*T
	zeroize.Erasable
}](v T) *Guard[T] {
	return NewFunc(v, func(p *T) { P(p).Erase() })
}

// NewFunc takes ownership of v with an explicit erase function, for holding
// foreign types that do not implement the capability themselves. eraseFn
// must be non-nil.
func NewFunc[T any](v T, eraseFn func(*T)) *Guard[T] {
	if eraseFn == nil {
		panic("guard: nil erase function")
	}

	g := &Guard[T]{value: v, erase: eraseFn}
	runtime.SetFinalizer(g, (*Guard[T]).Destroy)

	return g
}

// Value returns a pointer to the held value for reads and in-place writes.
// Ownership stays with the guard. After Destroy the pointer remains valid
// and refers to the erased, structurally-empty value.
func (g *Guard[T]) Value() *T {
	return &g.value
}

// Destroy erases the held value. Only the first call erases; Destroy is
// idempotent and safe to run on every exit path, including deferred
// execution during panic unwinding.
func (g *Guard[T]) Destroy() {
	if !g.done.CompareAndSwap(false, true) {
		return
	}

	g.erase(&g.value)
	runtime.SetFinalizer(g, nil)
}

// Destroyed reports whether the guard has been destroyed or taken.
func (g *Guard[T]) Destroyed() bool {
	return g.done.Load()
}

// Take disarms the guard and returns the value without erasing it. This is
// the one sanctioned bypass of the erasure guarantee, for transferring
// ownership elsewhere; the new owner assumes responsibility for erasure.
//
// For heap-backed values the returned value shares storage with the guard's
// copy, which is why Take does not erase. For inline-storage values (a key
// array, say) the guard's disarmed copy keeps its bytes until collected;
// callers needing stricter hygiene can copy out and Destroy instead.
func (g *Guard[T]) Take() T {
	g.done.Store(true)
	runtime.SetFinalizer(g, nil)

	return g.value
}
