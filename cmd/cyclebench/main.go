// Command cyclebench times a few built-in byte-oriented workloads in clock
// cycles and reports them as cycles per byte. It drives the measurement and
// formatter contracts end to end the way a benchmarking harness would:
// start/end around each iteration, add/zero to accumulate, then formatter
// lookup to render.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	cyclesperbyte "github.com/MeKo-Christian/cycles-per-byte"
	"github.com/MeKo-Christian/cycles-per-byte/internal/cpu"
	"github.com/MeKo-Christian/cycles-per-byte/internal/cycles"
)

type workload struct {
	name string
	fn   func(buf []byte) uint64
}

var workloads = []workload{
	{"sum", sumBytes},
	{"xor", xorFold},
	{"fnv1a", fnv1a},
}

type benchResult struct {
	name    string
	mean    float64
	samples []float64
}

func main() {
	var (
		names   = flag.String("workloads", "sum,xor,fnv1a", "comma-separated workloads")
		size    = flag.Int("size", 4096, "buffer size in bytes")
		iters   = flag.Int("iters", 200, "benchmark iterations")
		warmup  = flag.Int("warmup", 10, "warmup iterations")
		decimal = flag.Bool("decimal", false, "report decimal (powers of 1000) bytes")
		machine = flag.Bool("machine", false, "machine-readable output, unscaled cycles")
		seed    = flag.Int64("seed", 1, "rng seed for buffer contents")
	)
	flag.Parse()

	selected, err := resolveWorkloads(*names)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *size < 1 || *iters < 1 {
		fmt.Fprintln(os.Stderr, "size and iters must be positive")
		os.Exit(1)
	}

	buf := make([]byte, *size)
	rand.New(rand.NewSource(*seed)).Read(buf)

	var m cyclesperbyte.CyclesPerByte

	results := make([]benchResult, 0, len(selected))
	for _, w := range selected {
		results = append(results, run(m, w, buf, *iters, *warmup))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].mean < results[j].mean
	})

	throughput := cyclesperbyte.Bytes(uint64(*size))
	if *decimal {
		throughput = cyclesperbyte.BytesDecimal(uint64(*size))
	}

	if *machine {
		reportMachine(m, results)
		return
	}

	report(m, throughput, results, *iters, *warmup)
}

func resolveWorkloads(names string) ([]workload, error) {
	var selected []workload

	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		found := false
		for _, w := range workloads {
			if w.name == name {
				selected = append(selected, w)
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("unknown workload %q", name)
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no workloads selected")
	}

	return selected, nil
}

// sink keeps workload results live so the timed calls aren't optimized away.
var sink uint64

func run(m cyclesperbyte.CyclesPerByte, w workload, buf []byte, iters, warmup int) benchResult {
	for range warmup {
		sink += w.fn(buf)
	}

	total := m.Zero()
	samples := make([]float64, 0, iters)

	for range iters {
		started := m.Start()
		r := w.fn(buf)
		delta := m.End(started)

		sink += r
		total = m.Add(total, delta)
		samples = append(samples, m.ToFloat64(delta))
	}

	return benchResult{
		name:    w.name,
		mean:    m.ToFloat64(total) / float64(iters),
		samples: samples,
	}
}

func report(m cyclesperbyte.CyclesPerByte, throughput cyclesperbyte.Throughput, results []benchResult, iters, warmup int) {
	f := m.Formatter()

	fmt.Printf("counter=%s cpu=%s\n", cycles.CounterName(), cpu.DetectFeatures())
	fmt.Printf("throughput=%s iters=%d warmup=%d\n", throughput, iters, warmup)
	fmt.Printf("%10s  %24s  %24s  %14s\n", "workload", "mean", "best", "series")

	for _, res := range results {
		scaled := append([]float64(nil), res.samples...)
		label := f.ScaleThroughputs(res.mean, throughput, scaled)

		best := scaled[0]
		for _, v := range scaled[1:] {
			if v < best {
				best = v
			}
		}

		fmt.Printf("%10s  %24s  %24s  %8d %s\n",
			res.name,
			f.FormatThroughput(throughput, res.mean),
			fmt.Sprintf("%.4f %s", best, label),
			len(scaled), label)
	}
}

func reportMachine(m cyclesperbyte.CyclesPerByte, results []benchResult) {
	f := m.Formatter()

	for _, res := range results {
		values := append([]float64(nil), res.samples...)
		label := f.ScaleForMachines(values)

		fmt.Printf("%s\t%s\t%s\n", res.name, label, f.FormatValue(res.mean))
	}
}

func sumBytes(buf []byte) uint64 {
	var s uint64
	for _, b := range buf {
		s += uint64(b)
	}

	return s
}

func xorFold(buf []byte) uint64 {
	var x uint64
	for i, b := range buf {
		x ^= uint64(b) << (uint(i) % 56)
	}

	return x
}

// fnv1a is the 64-bit FNV-1a hash, a byte-at-a-time workload whose cycle
// cost scales linearly with input size.
func fnv1a(buf []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)

	h := uint64(offset)
	for _, b := range buf {
		h ^= uint64(b)
		h *= prime
	}

	return h
}
