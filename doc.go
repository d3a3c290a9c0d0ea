// Package catdomain provides the categorical domain and indexing subsystem
// of the varmodel toolkit.
//
// Categorical values (strings, records, or entities themselves) are interned
// into per-kind registries that assign stable, densely-packed indices in
// [0, N). Downstream numeric and statistical machinery can then treat
// categorical data as plain integers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	catdomain/           Root package with the Domain, Mutable and Recorder interfaces
//	├── domain/          Registry and CountingRegistry interning tables
//	├── handle/          Observation, Variable and Identity handle variants
//	├── changelog/       Difference-list undo log for coordinated mutation
//	├── metric/          Prometheus instrumentation for registry activity
//	├── store/           BadgerDB snapshots of counted vocabularies
//	└── errors/          Structured error types
//
// # Quick Start
//
// Intern values and read them back through handles:
//
//	reg := domain.NewRegistry[string]()
//
//	obs := handle.NewObservation(reg, "red")
//	fmt.Println(obs.Index()) // 0
//
//	v := handle.NewVariable(reg)
//	v.Set("green")
//	val, _ := v.Value() // "green"
//
// # Vocabulary Trimming
//
// CountingRegistry tracks occurrence counts and supports the
// count, trim, reload protocol used by data-loading pipelines:
//
//	reg := domain.NewCountingRegistry[string]()
//	for _, tok := range tokens {
//	    reg.Index(tok)
//	}
//	if err := reg.TrimToSize(50000); err != nil {
//	    log.Fatal(err)
//	}
//	// Re-ingest tokens to rebuild handles against the new index space.
//
// Trimming rebuilds the index space; handles created before a trim report
// a stale-handle error instead of silently reading remapped values.
//
// # Coordination
//
// Mutation of a Variable handle is uncoordinated by default. Algorithms
// that need reversible mutation pass an explicit undo log at the call site:
//
//	undo := changelog.New()
//	v.SetLogged("blue", undo)
//	...
//	undo.UndoAll()
package catdomain
