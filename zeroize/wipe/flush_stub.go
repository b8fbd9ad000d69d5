//go:build !arm64 || purego

package wipe

// Registers is a no-op on targets without a supported vector register
// flush; memory is still erased, registers are not explicitly cleared.
func Registers() {}
