// Package guard binds erasure to scope exit.
//
// Guard owns one erasable value and erases it exactly once when Destroy
// runs, usually deferred:
//
//	g := guard.New[erase.Buffer](buf)
//	defer g.Destroy()
//
// Deferred Destroy runs on every exit path, normal return and panic
// unwinding alike, and repeated calls are no-ops. Take is the one sanctioned
// bypass for moving the value out without erasing it.
//
// Dropper is the embeddable form for user types that manage their own
// teardown: calling Drop at the end of Close erases the type's fields after
// any cleanup that still needs to read them.
package guard
