package catdomain

// Domain is the read/intern surface of a domain registry.
//
// A Domain assigns stable, dense, non-negative indices to distinct values
// of one categorical kind. Implementations live in the domain package;
// handles depend only on this surface.
type Domain[T comparable] interface {
	// Index interns v if absent and returns its stable index.
	Index(v T) int32

	// Get returns the value at index i.
	Get(i int32) (T, error)

	// AllocSize returns the number of distinct interned values.
	AllocSize() int32

	// Size returns the logical size of the domain.
	Size() int32

	// Generation counts how many times the index space has been rebuilt.
	// Indices issued before the current generation are stale.
	Generation() uint64
}

// Mutable is the surface an undo log needs to reverse a mutation.
type Mutable interface {
	// SetIndex moves the handle to a pre-resolved index.
	SetIndex(i int32) error

	// Reset returns the handle to the unset state.
	Reset()
}

// Recorder receives one record per coordinated mutation so it can be
// undone later. Implementations must not mutate the domain registry
// from inside Record.
type Recorder interface {
	Record(h Mutable, oldIndex, newIndex int32)
}
