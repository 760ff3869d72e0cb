package cyclesperbyte

import "fmt"

// ThroughputKind discriminates how a benchmark declares its per-iteration
// workload size.
type ThroughputKind uint8

const (
	// ThroughputBytes declares a workload of Count bytes (binary scaling).
	ThroughputBytes ThroughputKind = iota

	// ThroughputBytesDecimal declares a workload of Count bytes with decimal
	// (powers of 1000) scaling in harnesses that rescale; here it only
	// selects the "(decimal)" label variant.
	ThroughputBytesDecimal

	// ThroughputElements declares a workload of Count abstract elements.
	ThroughputElements
)

// Throughput describes the per-iteration workload size a benchmark declares.
// The harness constructs it; this package only inspects it to pick a display
// scale and unit label.
type Throughput struct {
	Kind  ThroughputKind
	Count uint64
}

// Bytes declares a throughput of n bytes processed per iteration.
func Bytes(n uint64) Throughput {
	return Throughput{Kind: ThroughputBytes, Count: n}
}

// BytesDecimal declares a throughput of n bytes per iteration with decimal
// byte scaling.
func BytesDecimal(n uint64) Throughput {
	return Throughput{Kind: ThroughputBytesDecimal, Count: n}
}

// Elements declares a throughput of n elements processed per iteration.
func Elements(n uint64) Throughput {
	return Throughput{Kind: ThroughputElements, Count: n}
}

// String returns a diagnostic description such as "16 bytes" or "5 elements".
func (t Throughput) String() string {
	switch t.Kind {
	case ThroughputBytes:
		return fmt.Sprintf("%d bytes", t.Count)
	case ThroughputBytesDecimal:
		return fmt.Sprintf("%d bytes (decimal)", t.Count)
	case ThroughputElements:
		return fmt.Sprintf("%d elements", t.Count)
	default:
		return fmt.Sprintf("unknown throughput kind %d", t.Kind)
	}
}
