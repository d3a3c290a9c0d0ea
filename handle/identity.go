package handle

import (
	"github.com/varmodel/catdomain"
)

// Identity is a handle whose interned value is the entity itself.
//
// T must have identity semantics under Go equality, in practice a pointer
// type, so that two distinct entities never collapse to one index even
// when they are structurally equal. Construction is the only registration
// point; identity and index are fixed for the entity's lifetime.
type Identity[T comparable] struct {
	self  T
	index int32
}

// NewIdentity registers self into dom and returns the finished handle.
// Registration happens here, after self is fully constructed, never from
// inside self's own constructor.
func NewIdentity[T comparable](dom catdomain.Domain[T], self T) *Identity[T] {
	return &Identity[T]{
		self:  self,
		index: dom.Index(self),
	}
}

// Index returns the entity's index.
func (e *Identity[T]) Index() int32 {
	return e.index
}

// Value returns the entity itself. No registry lookup is needed; the
// method exists for symmetry with the other handle variants.
func (e *Identity[T]) Value() T {
	return e.self
}
