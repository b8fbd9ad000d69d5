// Package erase provides Erasable implementations and field-by-field erasure
// of whole structs.
//
// Core APIs include scalar and slice erasure (Scalar, Bytes, Slice), owned
// secret containers (Buffer, String), erasure through optional pointers
// (Option), and reflection-driven aggregate erasure (Struct) with skip-field
// and padding options.
//
// Every operation delegates to the wipe primitive, so the stores are real
// and cannot be removed by the optimizer. Erasure itself is infallible; the
// only errors are misuse of the reflection entry points (a target that is
// not a non-nil pointer to a struct).
package erase
