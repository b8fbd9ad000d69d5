// Package zeroize provides guaranteed erasure of sensitive in-memory data.
//
// The package defines the Erasable capability; the mechanics live in
// subpackages:
//
//   - wipe: the optimization-resistant overwrite primitive and its
//     observable-effect barrier
//   - erase: Erasable implementations for scalars, slices, buffers, and
//     reflection-driven erasure of whole structs
//   - guard: scope-bound wrappers that erase a value on every exit path
//
// Typical usage around a short-lived key:
//
//	g := guard.New[erase.Buffer](buf)
//	defer g.Destroy()
//	use(g.Value().Bytes())
//
// This package is intentionally dependency-light; it performs no syscalls,
// allocates nothing on the erasure path, and works without page locking or
// memory protection. It defends against one failure mode only: the compiler
// or runtime eliding the erasure itself, or secret bytes surviving in wide
// registers past the logical lifetime of the value. Swap, core dumps, and
// hardware side channels are out of scope.
package zeroize
