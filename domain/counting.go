package domain

import (
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/varmodel/catdomain"
	"github.com/varmodel/catdomain/errors"
)

// CountingRegistry extends the base registry with per-index occurrence
// counts, enabling vocabulary trimming.
//
// Every Index call, fresh intern or repeat lookup, increments the count of
// the returned index. The counts feed the count, trim, reload protocol:
// ingest data once to populate counts, call one trim operation, then
// re-ingest from source to rebuild handles against the reduced index space.
// The registry does not orchestrate the reload; after a trim it only
// guarantees that Index and Get behave correctly against the new
// assignment, and that handles holding pre-trim indices are detectably
// stale via Generation.
type CountingRegistry[T comparable] struct {
	notifier
	tab    *table[T]
	counts []uint64
	gen    uint64
	mu     sync.RWMutex
}

var _ catdomain.Domain[string] = (*CountingRegistry[string])(nil)

// NewCountingRegistry creates an empty counting registry.
func NewCountingRegistry[T comparable]() *CountingRegistry[T] {
	return &CountingRegistry[T]{
		tab:    newTable[T](defaultCapacity),
		counts: make([]uint64, 0, defaultCapacity),
	}
}

// RestoreCountingRegistry rebuilds a registry from an ordered value
// sequence and parallel counts, typically loaded from a snapshot. Indices
// in the restored registry equal positions in values.
func RestoreCountingRegistry[T comparable](values []T, counts []uint64) (*CountingRegistry[T], error) {
	if len(values) != len(counts) {
		return nil, errors.New(errors.OpRestore, errors.KindCorruptSnapshot).
			Detail("%d values but %d counts", len(values), len(counts)).
			Build()
	}

	r := NewCountingRegistry[T]()
	for i, v := range values {
		if _, fresh := r.tab.intern(v); !fresh {
			return nil, errors.New(errors.OpRestore, errors.KindCorruptSnapshot).
				Index(int32(i)).
				Detail("duplicate value at index %d", i).
				Build()
		}
	}
	r.counts = append(r.counts, counts...)
	return r, nil
}

// Index interns v if absent, increments its occurrence count, and returns
// its stable index.
func (r *CountingRegistry[T]) Index(v T) int32 {
	r.mu.Lock()
	i, fresh := r.tab.intern(v)
	if fresh {
		r.counts = append(r.counts, 0)
	}
	r.counts[i]++
	size := r.tab.size()
	r.mu.Unlock()

	if fresh {
		r.notify(Event{Type: EventInterned, Index: i, Size: size, Value: v})
	}
	return i
}

// Get returns the value at index i.
func (r *CountingRegistry[T]) Get(i int32) (T, error) {
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

// Count returns the occurrence count recorded for index i since the last
// trim.
func (r *CountingRegistry[T]) Count(i int32) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || int(i) >= len(r.counts) {
		return 0, errors.OutOfRange(errors.OpLookup, i, int32(len(r.counts)))
	}
	return r.counts[i], nil
}

// Counts returns a copy of the per-index occurrence counts.
func (r *CountingRegistry[T]) Counts() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uint64, len(r.counts))
	copy(out, r.counts)
	return out
}

// AllocSize returns the number of distinct interned values.
func (r *CountingRegistry[T]) AllocSize() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.size()
}

// Size returns the logical size of the domain.
func (r *CountingRegistry[T]) Size() int32 {
	return r.AllocSize()
}

// Generation reports how many times the index space has been rebuilt.
func (r *CountingRegistry[T]) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// Values returns the interned values in index order.
func (r *CountingRegistry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.values()
}

// TrimBelowCount rebuilds the registry keeping only values whose count is
// at least threshold, re-indexed densely by descending count with ties
// broken by original index ascending. Counts reset to zero; indices issued
// before the trim become stale. Returns an empty-domain error, without
// mutating the registry, when no value meets the threshold.
func (r *CountingRegistry[T]) TrimBelowCount(threshold uint64) error {
	r.mu.Lock()

	ranked := r.rankedLocked()
	keep := ranked
	for n, idx := range ranked {
		if r.counts[idx] < threshold {
			keep = ranked[:n]
			break
		}
	}
	if len(keep) == 0 {
		r.mu.Unlock()
		return errors.EmptyDomain(errors.OpTrim, "no value reached count "+strconv.FormatUint(threshold, 10))
	}

	dropped := len(r.counts) - len(keep)
	r.rebuildLocked(keep)
	gen, size := r.gen, r.tab.size()
	r.mu.Unlock()

	Logger().Debug("trimmed domain below count",
		zap.Uint64("threshold", threshold),
		zap.Int32("kept", size),
		zap.Int("dropped", dropped),
		zap.Uint64("generation", gen))

	r.notify(Event{Type: EventTrimmed, Size: size, Generation: gen})
	return nil
}

// TrimToSize rebuilds the registry keeping the maxSize values with the
// highest counts, with the same ordering and staleness semantics as
// TrimBelowCount. Returns an empty-domain error when maxSize is not
// positive or the registry is empty.
func (r *CountingRegistry[T]) TrimToSize(maxSize int32) error {
	r.mu.Lock()

	if maxSize <= 0 || len(r.counts) == 0 {
		n := len(r.counts)
		r.mu.Unlock()
		return errors.New(errors.OpTrim, errors.KindEmptyDomain).
			Size(int32(n)).
			Detail("cannot trim %d values to size %d", n, maxSize).
			Build()
	}

	keep := r.rankedLocked()
	if int32(len(keep)) > maxSize {
		keep = keep[:maxSize]
	}

	dropped := len(r.counts) - len(keep)
	r.rebuildLocked(keep)
	gen, size := r.gen, r.tab.size()
	r.mu.Unlock()

	Logger().Debug("trimmed domain to size",
		zap.Int32("max_size", maxSize),
		zap.Int32("kept", size),
		zap.Int("dropped", dropped),
		zap.Uint64("generation", gen))

	r.notify(Event{Type: EventTrimmed, Size: size, Generation: gen})
	return nil
}

// rankedLocked returns all current indices ordered by descending count,
// ties by original index ascending.
func (r *CountingRegistry[T]) rankedLocked() []int32 {
	idx := make([]int32, len(r.counts))
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.Slice(idx, func(a, b int) bool {
		ca, cb := r.counts[idx[a]], r.counts[idx[b]]
		if ca != cb {
			return ca > cb
		}
		return idx[a] < idx[b]
	})
	return idx
}

// rebuildLocked replaces the table with the kept old indices, re-interned
// in the given order, and resets counts for the re-ingestion pass.
func (r *CountingRegistry[T]) rebuildLocked(keep []int32) {
	old := r.tab
	r.tab = newTable[T](len(keep))
	for _, oldIdx := range keep {
		r.tab.intern(old.forward[oldIdx])
	}
	r.counts = make([]uint64, len(keep))
	r.gen++
}
