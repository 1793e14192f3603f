// Package simd provides the float32 kernels behind the distance package.
//
// Two kernel sets exist, both written in portable Go:
//
//   - generic: one accumulator, summed in element order
//   - unrolled: eight independent accumulators combined pairwise at the end
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects unrolled when
// the CPU has AVX2 (x86-64) or ASIMD (ARM64), and generic otherwise. Set
// HOLOCRON_SIMD=generic or HOLOCRON_SIMD=unrolled to force one.
//
// The two sets add in a different order, so results can differ in the last
// bits of a float32 between machines. Within one process the choice is fixed.
//
// # Operations
//
//   - Dot: inner product of two equal-length vectors
//   - SumSquares: squared L2 norm of a single vector
package simd
