// Package distance provides the similarity math used by the vector store.
//
// All kernels run through internal/simd, which picks an implementation for
// the current CPU at start-up.
//
// # Failure Modes
//
// Cosine similarity is undefined for some inputs. Instead of returning NaN
// or Inf, the functions here report a closed set of errors:
//
//   - ErrEmptyVector: either operand has zero length
//   - ErrUnequalVectorLengths: operand lengths differ (as *ErrDimensionMismatch)
//   - ErrZeroMagnitude: either operand has an L2 norm of exactly zero
//
// Vectors holding NaN or Inf are not rejected; they yield a NaN score.
//
// # Usage
//
//	sim, err := distance.Cosine(a, b)
//
//	scorer := distance.NewCosineScorer(query)
//	for _, v := range candidates {
//	    sim, err := scorer.Score(v)
//	    ...
//	}
package distance
