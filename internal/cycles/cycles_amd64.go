//go:build amd64

package cycles

const counterName = "rdtsc"

// now reads the time-stamp counter using RDTSC.
// Implemented in cycles_amd64.s
//
//go:noescape
func now() uint64
