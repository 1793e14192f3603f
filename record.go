package holocron

import (
	"maps"
	"math"
	"slices"
)

// Record is a single stored embedding: an id, its vector and optional
// metadata. A Record is immutable once constructed; accessors hand out copies.
//
// The zero Record has an empty id, an empty vector and no metadata.
type Record struct {
	id          string
	values      []float32
	metadata    map[string]string
	hasMetadata bool
}

// NewRecord creates a Record without metadata. It is equivalent to
// NewRecordWithMetadata(id, values, nil).
func NewRecord(id string, values []float32) Record {
	return NewRecordWithMetadata(id, values, nil)
}

// NewRecordWithMetadata creates a Record. A nil metadata map means the record
// carries no metadata; a non-nil map, even an empty one, is stored as present.
//
// No validation is performed: empty ids, empty vectors and NaN values are
// accepted and only surface as errors when the record is scored by a query.
func NewRecordWithMetadata(id string, values []float32, metadata map[string]string) Record {
	r := Record{
		id:     id,
		values: slices.Clone(values),
	}
	if metadata != nil {
		r.metadata = maps.Clone(metadata)
		r.hasMetadata = true
	}
	return r
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// Values returns a copy of the record vector.
func (r Record) Values() []float32 { return slices.Clone(r.values) }

// Dimension returns the length of the record vector.
func (r Record) Dimension() int { return len(r.values) }

// Metadata returns a copy of the record metadata and whether metadata was
// supplied at construction.
func (r Record) Metadata() (map[string]string, bool) {
	if !r.hasMetadata {
		return nil, false
	}
	return maps.Clone(r.metadata), true
}

// HasMetadata reports whether metadata was supplied at construction.
func (r Record) HasMetadata() bool { return r.hasMetadata }

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	c := Record{
		id:          r.id,
		values:      slices.Clone(r.values),
		hasMetadata: r.hasMetadata,
	}
	if r.hasMetadata {
		c.metadata = maps.Clone(r.metadata)
	}
	return c
}

// Equal reports whether r and other hold the same id, vector and metadata.
// Vectors are compared bit for bit, so a NaN equals the same NaN.
func (r Record) Equal(other Record) bool {
	if r.id != other.id || r.hasMetadata != other.hasMetadata {
		return false
	}
	if !slices.EqualFunc(r.values, other.values, func(a, b float32) bool {
		return math.Float32bits(a) == math.Float32bits(b)
	}) {
		return false
	}
	return maps.Equal(r.metadata, other.metadata)
}
