package cyclesperbyte

import "fmt"

// ValueFormatter is the rendering contract a benchmarking harness drives when
// reporting results. Scale methods rewrite a slice of measured values in
// place and return the unit label the rewritten values are expressed in.
//
// Implementations must accept every input without failing; a zero throughput
// denominator divides through to an infinity rather than erroring.
type ValueFormatter interface {
	// FormatValue renders a single bare value with its unit.
	FormatValue(value float64) string

	// FormatThroughput renders a value scaled by the declared per-iteration
	// workload size.
	FormatThroughput(throughput Throughput, value float64) string

	// ScaleValues rescales values for human-readable display without
	// throughput context, using typical to pick one scale for the series.
	ScaleValues(typical float64, values []float64) string

	// ScaleThroughputs rescales values by the declared workload size.
	ScaleThroughputs(typical float64, throughput Throughput, values []float64) string

	// ScaleForMachines rescales values for machine-readable output.
	ScaleForMachines(values []float64) string
}

// cyclesFormatter renders raw cycle counts. Cycles have no natural magnitude
// prefixes the way nanoseconds do, so every scale operation is the identity
// except where an explicit throughput denominator applies.
type cyclesFormatter struct{}

var _ ValueFormatter = cyclesFormatter{}

func (cyclesFormatter) FormatValue(value float64) string {
	return fmt.Sprintf("%.4f cycles", value)
}

func (cyclesFormatter) FormatThroughput(throughput Throughput, value float64) string {
	switch throughput.Kind {
	case ThroughputBytesDecimal:
		return fmt.Sprintf("%.4f cpb (decimal)", value/float64(throughput.Count))
	case ThroughputElements:
		return fmt.Sprintf("%.4f cycles/%d", value, throughput.Count)
	default:
		return fmt.Sprintf("%.4f cpb", value/float64(throughput.Count))
	}
}

func (cyclesFormatter) ScaleValues(typical float64, values []float64) string {
	_ = typical

	return "cycles"
}

func (cyclesFormatter) ScaleThroughputs(typical float64, throughput Throughput, values []float64) string {
	_ = typical

	d := float64(throughput.Count)
	for i := range values {
		values[i] /= d
	}

	switch throughput.Kind {
	case ThroughputBytesDecimal:
		return "cpb (decimal)"
	case ThroughputElements:
		return "c/e"
	default:
		return "cpb"
	}
}

func (cyclesFormatter) ScaleForMachines(values []float64) string {
	return "cycles"
}
