// Package domain implements the value-index interning tables at the core
// of the categorical subsystem.
//
// A Registry maps distinct values of one categorical kind to stable,
// densely-packed indices in [0, N). Interning is idempotent and the index
// space is append-only:
//
//	reg := domain.NewRegistry[string]()
//
//	i := reg.Index("red")   // 0, fresh intern
//	j := reg.Index("blue")  // 1
//	k := reg.Index("red")   // 0 again, no growth
//
//	v, err := reg.Get(i)    // "red"
//
// # Counting and Trimming
//
// CountingRegistry additionally records how often each index is produced,
// so a vocabulary can be pruned after one ingestion pass:
//
//	reg := domain.NewCountingRegistry[string]()
//	for _, tok := range corpus {
//	    reg.Index(tok)
//	}
//	err := reg.TrimToSize(10000)     // keep the 10k most frequent values
//	err = reg.TrimBelowCount(5)      // or: drop values seen fewer than 5 times
//
// A trim rebuilds forward and backward maps with a new dense assignment
// ordered by descending count (ties by original index, ascending) and
// resets all counts. Indices issued before the trim are invalid; the
// caller is expected to re-ingest source data and rebuild its handles.
// Each trim increments the registry generation so stale handles are
// detectable rather than silently wrong.
//
// # Concurrency
//
// All registry operations are safe for concurrent use. Interning uses a
// read-fast-path with an exclusive check-then-insert, so two concurrent
// first-time interns of one value agree on its index. Trims take the write
// lock for the whole rebuild; no reader observes a partially-rebuilt
// table.
//
// # Observers
//
// Register observers to track registry activity:
//
//	reg.Subscribe(obs) // receives EventInterned and EventTrimmed
//
// Observers run synchronously and must not mutate the registry.
package domain
