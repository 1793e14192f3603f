package holocron

import (
	"errors"
	"fmt"

	"github.com/hupe1980/holocron/distance"
)

// MaxTopK is the largest result size Query accepts.
const MaxTopK = 10_000

var (
	// ErrTopKTooLarge is returned when topK exceeds MaxTopK.
	ErrTopKTooLarge = errors.New("top_k maximum value is 10,000 records")

	// ErrNegativeTopK is returned when topK is negative.
	ErrNegativeTopK = errors.New("top_k cannot be negative")

	// ErrEmptyVector is returned when a query or record vector has zero length.
	ErrEmptyVector = distance.ErrEmptyVector

	// ErrZeroMagnitude is returned when a query or record vector has a zero L2 norm.
	ErrZeroMagnitude = distance.ErrZeroMagnitude

	// ErrUnequalVectorLengths is returned when the query and a record differ in dimension.
	ErrUnequalVectorLengths = distance.ErrUnequalVectorLengths
)

// ErrDimensionMismatch indicates a query/record dimension mismatch.
// It matches ErrUnequalVectorLengths under errors.Is.
type ErrDimensionMismatch = distance.ErrDimensionMismatch

// ErrInvalidTopK indicates a result size outside [0, Max].
//
// The matching sentinel (ErrTopKTooLarge or ErrNegativeTopK) can be accessed
// via errors.Unwrap.
type ErrInvalidTopK struct {
	TopK int
	Max  int
}

func (e *ErrInvalidTopK) Error() string {
	return fmt.Sprintf("%s: got %d", e.Unwrap(), e.TopK)
}

func (e *ErrInvalidTopK) Unwrap() error {
	if e.TopK < 0 {
		return ErrNegativeTopK
	}
	return ErrTopKTooLarge
}

// SimilarityCalculationError attributes a scoring failure to the record that
// caused it.
//
// The underlying error is Err, also reachable via errors.Unwrap, so
// errors.Is(err, ErrZeroMagnitude) and friends still match.
type SimilarityCalculationError struct {
	ID  string // Id of the record that could not be scored.
	Err error
}

func (e *SimilarityCalculationError) Error() string {
	return fmt.Sprintf("failure scoring record %s: %v", e.ID, e.Err)
}

func (e *SimilarityCalculationError) Unwrap() error { return e.Err }

// ErrorKind is a stable tag for a failure, suitable for mapping onto a host
// environment's error types.
type ErrorKind int

const (
	// KindUnknown tags errors that did not originate in this package.
	KindUnknown ErrorKind = iota
	KindTopKTooLarge
	KindNegativeTopK
	KindEmptyVector
	KindZeroMagnitude
	KindUnequalVectorLengths
	KindSimilarityCalculation
)

func (k ErrorKind) String() string {
	switch k {
	case KindTopKTooLarge:
		return "TopKTooLarge"
	case KindNegativeTopK:
		return "NegativeTopK"
	case KindEmptyVector:
		return "EmptyVector"
	case KindZeroMagnitude:
		return "ZeroMagnitude"
	case KindUnequalVectorLengths:
		return "UnequalVectorLengths"
	case KindSimilarityCalculation:
		return "SimilarityCalculationError"
	default:
		return "Unknown"
	}
}

// KindOf returns the outermost kind of err. A per-record scoring failure
// reports KindSimilarityCalculation; use RootKind for its cause.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var sce *SimilarityCalculationError
	if errors.As(err, &sce) {
		return KindSimilarityCalculation
	}
	return RootKind(err)
}

// RootKind returns the kind of the innermost known cause of err.
func RootKind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrTopKTooLarge):
		return KindTopKTooLarge
	case errors.Is(err, ErrNegativeTopK):
		return KindNegativeTopK
	case errors.Is(err, ErrEmptyVector):
		return KindEmptyVector
	case errors.Is(err, ErrZeroMagnitude):
		return KindZeroMagnitude
	case errors.Is(err, ErrUnequalVectorLengths):
		return KindUnequalVectorLengths
	}
	var sce *SimilarityCalculationError
	if errors.As(err, &sce) {
		return KindSimilarityCalculation
	}
	return KindUnknown
}
