// Package wipe implements the optimization-resistant overwrite primitive.
//
// Bytes and Span overwrite a memory extent with the erasure pattern using
// stores the compiler is not permitted to remove: the aligned body of the
// extent is written with sync/atomic word stores, and the whole write is
// sealed with an atomic read-modify-write barrier plus runtime.KeepAlive.
// A plain assignment loop is never sufficient here; an optimizing compiler
// may prove such stores dead and drop them when the value is not read again.
//
// On arm64 builds (without the purego tag), Registers additionally zeroes
// the NEON vector register file after the write, so secret bytes spilled
// into wide registers do not outlive the value. On other targets Registers
// is an empty function.
//
// Both operations are infallible, allocation-free, and safe in freestanding
// use; they issue no syscalls and touch nothing beyond the given extent.
package wipe
