// Package cycles reads the CPU's free-running cycle counter.
//
// The counter is the time-stamp counter (RDTSC) on x86 and x86-64, and the
// virtual counter register (CNTVCT_EL0) on arm64. Readings share an arbitrary
// epoch and carry no unit beyond raw ticks; no frequency calibration is
// performed. Architectures outside this set fail to compile — there is no
// generic timer fallback.
package cycles

// Now returns the current cycle counter reading.
//
// The read is not serializing: the processor may reorder it relative to
// surrounding instructions. Presence of the instruction is not probed; on a
// processor lacking it the read faults.
func Now() uint64 {
	return now()
}

// CounterName identifies the hardware counter backing Now, for display in
// benchmark environment reports.
func CounterName() string {
	return counterName
}
