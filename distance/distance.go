package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/holocron/internal/simd"
)

var (
	// ErrEmptyVector is returned when an operand vector has zero length.
	ErrEmptyVector = errors.New("vectors cannot be empty")

	// ErrZeroMagnitude is returned when an operand vector has a zero L2 norm.
	ErrZeroMagnitude = errors.New("vector magnitude cannot be zero")

	// ErrUnequalVectorLengths is returned when operand vectors differ in length.
	ErrUnequalVectorLengths = errors.New("vectors are not equal length")
)

// ErrDimensionMismatch indicates that two operands differ in length.
// It matches ErrUnequalVectorLengths under errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrUnequalVectorLengths, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrUnequalVectorLengths }

// Dot calculates the dot product of two vectors.
// It fails with *ErrDimensionMismatch when the lengths differ.
func Dot(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return simd.Dot(a, b), nil
}

// Magnitude returns the L2 norm of a.
func Magnitude(a []float32) float32 {
	return float32(math.Sqrt(float64(simd.SumSquares(a))))
}

// Kernel reports the kernel set the package dispatches to.
func Kernel() string {
	return simd.ActiveKernel().String()
}

// Cosine returns dot(a, b) / (|a| * |b|).
func Cosine(a, b []float32) (float32, error) {
	return NewCosineScorer(a).Score(b)
}

// CosineScorer computes cosine similarities against a fixed query.
// The query magnitude is computed once.
type CosineScorer struct {
	query []float32
	norm  float32
}

// NewCosineScorer binds a scorer to query. The scorer keeps a reference to
// query; callers must not modify it while the scorer is in use.
func NewCosineScorer(query []float32) *CosineScorer {
	return &CosineScorer{
		query: query,
		norm:  Magnitude(query),
	}
}

// Score returns the cosine similarity between the bound query and candidate.
//
// Checks run in a fixed order: empty operands, then length mismatch, then
// zero magnitude.
func (s *CosineScorer) Score(candidate []float32) (float32, error) {
	if len(s.query) == 0 || len(candidate) == 0 {
		return 0, ErrEmptyVector
	}

	dot, err := Dot(s.query, candidate)
	if err != nil {
		return 0, err
	}

	mag := Magnitude(candidate)
	if s.norm == 0 || mag == 0 {
		return 0, ErrZeroMagnitude
	}

	return dot / (s.norm * mag), nil
}
