package cyclesperbyte

import "github.com/MeKo-Christian/cycles-per-byte/internal/cycles"

// Measurement is the timing-strategy contract a benchmarking harness drives.
// I is the opaque intermediate produced by Start and consumed by End; V is
// the measured value the harness accumulates and converts for statistics.
//
// The harness calls Start before and End after each timed section, combines
// repeated samples with Add starting from Zero, and widens values with
// ToFloat64 for statistical processing.
type Measurement[I, V any] interface {
	Start() I
	End(started I) V
	Add(v1, v2 V) V
	Zero() V
	ToFloat64(v V) float64
	Formatter() ValueFormatter
}

// CyclesPerByte measures elapsed clock cycles instead of wall time. Both the
// intermediate and the value are raw 64-bit counter ticks.
//
// Every method is a pure function of its arguments plus the instantaneous
// counter reading; the zero value is ready to use and safe to share across
// goroutines.
type CyclesPerByte struct{}

var _ Measurement[uint64, uint64] = CyclesPerByte{}

// Start returns the current cycle counter reading.
func (CyclesPerByte) Start() uint64 {
	return cycles.Now()
}

// End returns the cycles elapsed since started. A reading that appears to
// have gone backward (counter reset, migration to a core with an
// unsynchronized counter) clamps to zero instead of wrapping.
func (CyclesPerByte) End(started uint64) uint64 {
	n := cycles.Now()
	if n < started {
		return 0
	}

	return n - started
}

// Add combines two accumulated cycle counts. Overflow past 64 bits is not
// guarded; realistic iteration counts stay far below it.
func (CyclesPerByte) Add(v1, v2 uint64) uint64 {
	return v1 + v2
}

// Zero returns the additive identity.
func (CyclesPerByte) Zero() uint64 {
	return 0
}

// ToFloat64 widens a cycle count for statistical processing. Values above
// 2^53 lose integer precision.
func (CyclesPerByte) ToFloat64(v uint64) float64 {
	return float64(v)
}

// Formatter returns the formatter that renders cycle counts. The formatter
// carries no state; the same instance is shared by every CyclesPerByte.
func (CyclesPerByte) Formatter() ValueFormatter {
	return cyclesFormatter{}
}
