package handle

import (
	"github.com/varmodel/catdomain"
	"github.com/varmodel/catdomain/errors"
)

// Observation is an immutable handle: its index is fixed when the
// observation is constructed and never changes.
type Observation[T comparable] struct {
	dom   catdomain.Domain[T]
	index int32
	gen   uint64
}

// NewObservation interns v into dom and returns a handle fixed on its
// index.
func NewObservation[T comparable](dom catdomain.Domain[T], v T) *Observation[T] {
	return &Observation[T]{
		dom:   dom,
		index: dom.Index(v),
		gen:   dom.Generation(),
	}
}

// Index returns the observed value's index.
func (o *Observation[T]) Index() int32 {
	return o.index
}

// Value resolves the observed value from the registry. It fails with a
// stale-handle error when the registry has been trimmed since the
// observation was constructed.
func (o *Observation[T]) Value() (T, error) {
	if g := o.dom.Generation(); g != o.gen {
		var zero T
		return zero, errors.Stale(errors.OpLookup, o.gen, g)
	}
	return o.dom.Get(o.index)
}
