package simd

var (
	dotImpl        = dotGeneric
	sumSquaresImpl = sumSquaresGeneric
)

// bindKernels wires the kernel set for k. Unknown values fall back to generic.
func bindKernels(k Kernel) {
	switch k {
	case Unrolled:
		dotImpl = dotUnrolled
		sumSquaresImpl = sumSquaresUnrolled
	default:
		dotImpl = dotGeneric
		sumSquaresImpl = sumSquaresGeneric
	}
}

// Dot calculates the dot product of two vectors.
// Public for use by the distance package.
//
// SAFETY: This function assumes len(a) == len(b).
// Callers MUST check lengths first; extra elements of b are ignored and a
// shorter b panics.
func Dot(a, b []float32) float32 {
	return dotImpl(a, b)
}

// SumSquares returns the sum of the squared elements of a, i.e. the squared
// L2 norm.
func SumSquares(a []float32) float32 {
	return sumSquaresImpl(a)
}

func dotGeneric(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

func sumSquaresGeneric(a []float32) float32 {
	var ret float32
	for _, x := range a {
		ret += x * x
	}

	return ret
}

// dotUnrolled keeps eight independent accumulators, one per lane of a
// 256-bit register, so the loop carries no serial dependency. The summation
// order differs from dotGeneric.
func dotUnrolled(a, b []float32) float32 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	i := 0
	for ; i+8 <= n; i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}

	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}

func sumSquaresUnrolled(a []float32) float32 {
	n := len(a)

	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	i := 0
	for ; i+8 <= n; i += 8 {
		s0 += a[i] * a[i]
		s1 += a[i+1] * a[i+1]
		s2 += a[i+2] * a[i+2]
		s3 += a[i+3] * a[i+3]
		s4 += a[i+4] * a[i+4]
		s5 += a[i+5] * a[i+5]
		s6 += a[i+6] * a[i+6]
		s7 += a[i+7] * a[i+7]
	}
	for ; i < n; i++ {
		s0 += a[i] * a[i]
	}

	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}
