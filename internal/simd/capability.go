package simd

import (
	"os"
	"strings"
)

// OverrideEnv names the environment variable that forces a kernel.
const OverrideEnv = "HOLOCRON_SIMD"

// Kernel names one of the float32 kernel sets this package ships.
type Kernel uint8

const (
	// Generic sums sequentially with a single accumulator.
	Generic Kernel = iota
	// Unrolled sums with eight independent accumulators, which the CPU can
	// overlap when it has wide vector units.
	Unrolled
)

func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernel parses a kernel name, ignoring case and surrounding space.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// Set once by the per-architecture init; read-only afterwards.
var (
	active      Kernel
	hasOverride bool

	// hasWideVectors reports AVX2 on x86-64 or ASIMD on ARM64.
	hasWideVectors bool
)

func initCapabilities() {
	active = resolveKernel(os.Getenv(OverrideEnv))
	bindKernels(active)
}

// resolveKernel honors a valid override and otherwise picks by CPU feature.
// Both kernels are portable Go, so an override is never rejected.
func resolveKernel(override string) Kernel {
	if k, ok := ParseKernel(override); ok {
		hasOverride = true
		return k
	}
	hasOverride = false
	return detectKernel()
}

func detectKernel() Kernel {
	if hasWideVectors {
		return Unrolled
	}
	return Generic
}

// ActiveKernel returns the kernel set Dot and SumSquares dispatch to.
func ActiveKernel() Kernel {
	return active
}

// IsOverridden reports whether HOLOCRON_SIMD named a known kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasWideVectors reports whether the CPU has AVX2 (x86-64) or ASIMD (ARM64).
func HasWideVectors() bool {
	return hasWideVectors
}
