package guard

import (
	"sync/atomic"

	"github.com/LerianStudio/lib-zeroize/zeroize/erase"
)

// dropperField is skipped during Drop so the latch survives the erasure of
// the embedding struct. This covers the conventional embedded form; a
// Dropper held under another field name needs an `erase:"skip"` tag.
const dropperField = "Dropper"

// Dropper attaches exactly-once field erasure to a user type's own
// teardown. Embed it and call Drop at the end of Close (or whatever the
// type's cleanup is), so erasure composes with, and runs after, cleanup
// steps that still read the fields:
//
//	type Session struct {
//		guard.Dropper
//		conn net.Conn `erase:"skip"`
//		key  [32]byte
//	}
//
//	func (s *Session) Close() error {
//		err := s.conn.Close()
//		s.Drop(s)
//		return err
//	}
//
// The zero value is ready to use.
type Dropper struct {
	dropped atomic.Bool
}

// Drop erases target's fields via erase.Struct. Only the first call erases;
// later calls are no-ops, so a Close that may run twice stays safe. The
// error mirrors erase.Struct and only reports a target that is not a
// non-nil pointer to a struct.
func (d *Dropper) Drop(target any, opts ...erase.StructOption) error {
	if !d.dropped.CompareAndSwap(false, true) {
		return nil
	}

	return erase.Struct(target, append(opts, erase.SkipFields(dropperField))...)
}

// Dropped reports whether Drop has run.
func (d *Dropper) Dropped() bool {
	return d.dropped.Load()
}
