// Package cpu reports processor capabilities for benchmark environment
// headers. Cycle measurement itself never consults this package: the counter
// instruction is executed unconditionally, and interpreting its output is
// left to whoever reads the report.
package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the processor the benchmark runs on. Vector-extension
// flags matter when comparing cycle counts across machines: a workload
// compiled for AVX2 on one host and SSE2 on another is not the same workload.
type Features struct {
	Architecture string
	HasSSE2      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}

// String renders a one-line summary such as "amd64 (sse2 avx avx2)".
func (f Features) String() string {
	exts := ""

	for _, e := range []struct {
		name string
		has  bool
	}{
		{"sse2", f.HasSSE2},
		{"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	} {
		if !e.has {
			continue
		}

		if exts != "" {
			exts += " "
		}

		exts += e.name
	}

	if exts == "" {
		return f.Architecture
	}

	return fmt.Sprintf("%s (%s)", f.Architecture, exts)
}
