//go:build arm64 && !purego

package wipe

import "golang.org/x/sys/cpu"

var hasASIMD = cpu.ARM64.HasASIMD

// Registers zeroes the NEON vector register file V0-V31. The overwrite loop
// and neighboring auto-vectorized code may have spilled secret bytes into
// wide registers that ordinary memory stores never touch; this clears them.
// Bytes and Span call it after the barrier. It degrades to a no-op when
// ASIMD is not reported by the CPU.
func Registers() {
	if !hasASIMD {
		return
	}

	flushNEON()
}

// flushNEON is implemented in flush_arm64.s.
func flushNEON()
