// Package cyclesperbyte measures clock cycles using the RDTSC instruction on
// x86 and x86-64 and the CNTVCT_EL0 virtual counter on arm64, and formats the
// resulting counts as throughput metrics (cycles per byte, cycles per
// element). Cycles per byte is the preferred measurement for cryptographic
// algorithms.
//
// The package plugs into a benchmarking harness through two narrow contracts:
// Measurement, which the harness's iteration loop drives, and ValueFormatter,
// which its reporting layer drives. The harness owns iteration counts,
// warm-up policy, statistics, and report rendering; this package only reads
// the counter and renders values.
//
//	var m cyclesperbyte.CyclesPerByte
//
//	total := m.Zero()
//	for range iters {
//	    started := m.Start()
//	    work()
//	    total = m.Add(total, m.End(started))
//	}
//
//	f := m.Formatter()
//	fmt.Println(f.FormatThroughput(cyclesperbyte.Bytes(16), m.ToFloat64(total)/float64(iters)))
//
// Only amd64, 386, and arm64 targets are supported; building for any other
// architecture fails at compile time.
package cyclesperbyte
