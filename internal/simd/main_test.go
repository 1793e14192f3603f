package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel set the run exercises.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", OverrideEnv, os.Getenv(OverrideEnv))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Wide vectors (AVX2/ASIMD): %v\n", HasWideVectors())
	fmt.Printf("===============================\n\n")

	os.Exit(m.Run())
}
