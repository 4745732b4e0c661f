// Package cpuinfo describes the hardware the benchmark runs on: schedulable
// threads and the SIMD extensions reported by golang.org/x/sys/cpu.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host's parallel capacity.
type Info struct {
	Arch        string   // runtime.GOARCH
	LogicalCPUs int      // runtime.NumCPU
	MaxProcs    int      // runtime.GOMAXPROCS(0) at detection time
	Features    []string // detected SIMD extensions, in a fixed order
}

// feature pairs a display name with a detection flag.
type feature struct {
	name string
	has  bool
}

// Detect probes the current host.
func Detect() Info {
	return Info{
		Arch:        runtime.GOARCH,
		LogicalCPUs: runtime.NumCPU(),
		MaxProcs:    runtime.GOMAXPROCS(0),
		Features:    detectFeatures(),
	}
}

// detectFeatures lists the extensions x/sys/cpu reports for this build.
// Flags for other architectures are always false, so the lists can be
// concatenated unconditionally.
func detectFeatures() []string {
	all := []feature{
		{"SSE4", cpu.X86.HasSSE41 || cpu.X86.HasSSE42},
		{"AVX", cpu.X86.HasAVX},
		{"AVX2", cpu.X86.HasAVX2},
		{"FMA", cpu.X86.HasFMA},
		{"AVX512F", cpu.X86.HasAVX512F},
		{"AVX512DQ", cpu.X86.HasAVX512DQ},
		{"AVX512BW", cpu.X86.HasAVX512BW},
		{"AVX512VL", cpu.X86.HasAVX512VL},
		{"ASIMD", cpu.ARM64.HasASIMD},
		{"ASIMDDP", cpu.ARM64.HasASIMDDP},
		{"SVE", cpu.ARM64.HasSVE},
	}

	out := make([]string, 0, len(all))
	for _, f := range all {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}

// Has reports whether the named extension was detected.
func (i Info) Has(name string) bool {
	for _, f := range i.Features {
		if f == name {
			return true
		}
	}
	return false
}

// String renders a one-line banner, e.g.
// "amd64: 16 logical CPUs, GOMAXPROCS=16, features: SSE4, AVX, AVX2, FMA".
func (i Info) String() string {
	feats := "none"
	if len(i.Features) > 0 {
		feats = strings.Join(i.Features, ", ")
	}
	return fmt.Sprintf("%s: %d logical CPUs, GOMAXPROCS=%d, features: %s",
		i.Arch, i.LogicalCPUs, i.MaxProcs, feats)
}
