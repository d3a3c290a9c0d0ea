package handle

import (
	"github.com/varmodel/catdomain"
	"github.com/varmodel/catdomain/errors"
)

// unset marks a variable that has not been assigned a value yet.
const unset = int32(-1)

// Variable is a mutable handle over a single index. It starts unset unless
// constructed with an initial value, and moves between indices via Set and
// SetIndex.
//
// Mutation is uncoordinated by default. Callers that need reversible
// mutation pass a Recorder explicitly (SetLogged, SetIndexLogged); the
// coordination decision is visible at every call site rather than baked
// into the handle's type.
type Variable[T comparable] struct {
	dom   catdomain.Domain[T]
	index int32
	gen   uint64
}

var _ catdomain.Mutable = (*Variable[string])(nil)

// NewVariable creates an unset variable bound to dom.
func NewVariable[T comparable](dom catdomain.Domain[T]) *Variable[T] {
	return &Variable[T]{dom: dom, index: unset}
}

// NewVariableOf creates a variable initialized to v.
func NewVariableOf[T comparable](dom catdomain.Domain[T], v T) *Variable[T] {
	h := NewVariable(dom)
	h.Set(v)
	return h
}

// IsSet reports whether the variable holds a value.
func (h *Variable[T]) IsSet() bool {
	return h.index != unset
}

// Index returns the current index, or -1 while unset.
func (h *Variable[T]) Index() int32 {
	return h.index
}

// Set interns v and moves the variable to its index with no external
// notification. This is the deliberate fast path for algorithms that
// manage their own consistency.
func (h *Variable[T]) Set(v T) {
	h.index = h.dom.Index(v)
	h.gen = h.dom.Generation()
}

// SetLogged interns v, moves the variable to its index, and appends an
// undo record to rec capturing the transition.
func (h *Variable[T]) SetLogged(v T, rec catdomain.Recorder) {
	old := h.index
	h.Set(v)
	rec.Record(h, old, h.index)
}

// SetIndex moves the variable to a pre-resolved index, skipping the intern
// lookup. The index must be in [0, AllocSize()).
func (h *Variable[T]) SetIndex(i int32) error {
	if size := h.dom.AllocSize(); i < 0 || i >= size {
		return errors.OutOfRange(errors.OpMutate, i, size)
	}
	h.index = i
	h.gen = h.dom.Generation()
	return nil
}

// SetIndexLogged moves the variable to a pre-resolved index and appends an
// undo record to rec.
func (h *Variable[T]) SetIndexLogged(i int32, rec catdomain.Recorder) error {
	old := h.index
	if err := h.SetIndex(i); err != nil {
		return err
	}
	rec.Record(h, old, i)
	return nil
}

// Reset returns the variable to the unset state.
func (h *Variable[T]) Reset() {
	h.index = unset
}

// Value resolves the variable's current value. It fails with an
// unset-value error before the first set, and with a stale-handle error
// when the registry has been trimmed since the last assignment.
func (h *Variable[T]) Value() (T, error) {
	if h.index == unset {
		var zero T
		return zero, errors.Unset(errors.OpLookup)
	}
	if g := h.dom.Generation(); g != h.gen {
		var zero T
		return zero, errors.Stale(errors.OpLookup, h.gen, g)
	}
	return h.dom.Get(h.index)
}
