//go:build arm64

package cycles

const counterName = "cntvct_el0"

// now reads the virtual counter register (CNTVCT_EL0).
// Implemented in cycles_arm64.s
//
//go:noescape
func now() uint64
