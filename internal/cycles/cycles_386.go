//go:build 386

package cycles

const counterName = "rdtsc"

// now reads the time-stamp counter using RDTSC.
// Implemented in cycles_386.s
//
//go:noescape
func now() uint64
