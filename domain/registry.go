package domain

import (
	"sync"

	"github.com/varmodel/catdomain"
	"github.com/varmodel/catdomain/errors"
)

// Registry is the bidirectional value-index map for one categorical kind.
//
// One registry instance exists per distinct kind and is shared by every
// handle of that kind. Registries are explicit objects passed by reference
// to handle constructors; there are no per-type singletons.
type Registry[T comparable] struct {
	notifier
	tab *table[T]
	mu  sync.RWMutex
}

var _ catdomain.Domain[string] = (*Registry[string])(nil)

// NewRegistry creates an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{tab: newTable[T](defaultCapacity)}
}

// Index interns v if absent and returns its stable index.
//
// Interning is idempotent: repeat calls with an equal value return the same
// index and leave the registry unchanged. The check-then-insert sequence is
// atomic with respect to concurrent callers, so two first-time interns of
// the same value always agree on its index.
func (r *Registry[T]) Index(v T) int32 {
	r.mu.RLock()
	if i, ok := r.tab.backward[v]; ok {
		r.mu.RUnlock()
		return i
	}
	r.mu.RUnlock()

	r.mu.Lock()
	i, fresh := r.tab.intern(v)
	size := r.tab.size()
	r.mu.Unlock()

	if fresh {
		r.notify(Event{Type: EventInterned, Index: i, Size: size, Value: v})
	}
	return i
}

// Get returns the value at index i.
func (r *Registry[T]) Get(i int32) (T, error) {
	r.mu.RLock()
	v, ok := r.tab.get(i)
	size := r.tab.size()
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, errors.OutOfRange(errors.OpLookup, i, size)
	}
	return v, nil
}

// AllocSize returns the number of distinct interned values.
func (r *Registry[T]) AllocSize() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.size()
}

// Size returns the logical size of the domain. For the base registry this
// always equals AllocSize.
func (r *Registry[T]) Size() int32 {
	return r.AllocSize()
}

// Generation reports how many times the index space has been rebuilt.
// The base registry never rebuilds, so its generation is always zero.
func (r *Registry[T]) Generation() uint64 {
	return 0
}

// Values returns the interned values in index order.
func (r *Registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.values()
}
