package domain

const defaultCapacity = 64

// table is the unlocked interning core shared by Registry and
// CountingRegistry. Callers are responsible for synchronization.
//
// Invariant: backward[forward[i]] == i for every valid i, and indices are
// contiguous in [0, len(forward)).
type table[T comparable] struct {
	forward  []T
	backward map[T]int32
}

func newTable[T comparable](capacity int) *table[T] {
	return &table[T]{
		forward:  make([]T, 0, capacity),
		backward: make(map[T]int32, capacity),
	}
}

// intern returns the index for v, appending a new slot when v is absent.
// The second result reports whether a fresh slot was allocated.
func (t *table[T]) intern(v T) (int32, bool) {
	if i, ok := t.backward[v]; ok {
		return i, false
	}
	i := int32(len(t.forward))
	t.forward = append(t.forward, v)
	t.backward[v] = i
	return i, true
}

func (t *table[T]) get(i int32) (T, bool) {
	if i < 0 || int(i) >= len(t.forward) {
		var zero T
		return zero, false
	}
	return t.forward[i], true
}

func (t *table[T]) size() int32 {
	return int32(len(t.forward))
}

// values returns a copy of the forward sequence in index order.
func (t *table[T]) values() []T {
	out := make([]T, len(t.forward))
	copy(out, t.forward)
	return out
}
