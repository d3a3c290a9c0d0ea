// Package handle provides the typed wrappers through which client code
// reads and writes categorical values.
//
// A handle holds one index into a domain registry and resolves it back to
// the underlying value on demand. Three variants cover the capability
// matrix:
//
//	Observation  index fixed at construction, never mutated
//	Variable     index mutable via Set/SetIndex, optionally coordinated
//	Identity     the interned value is the handle's entity itself
//
// Handles hold a non-owning reference to their registry; many handles of
// one kind share a single registry, which outlives all of them.
//
// # Coordination
//
// Variable mutation comes in uncoordinated (Set, SetIndex) and coordinated
// (SetLogged, SetIndexLogged) forms. The coordinated forms append an undo
// record to an explicit Recorder so the mutation can be reversed; the
// uncoordinated forms exist for algorithms, belief propagation among them,
// that track their own state and cannot tolerate side-channel
// notification.
//
// # Staleness
//
// A trim on a counting registry invalidates every previously issued index.
// Handles capture the registry generation when they acquire an index and
// fail reads with a stale-handle error after a trim, instead of silently
// resolving a remapped value. Rebuild handles by re-ingesting source data
// after any trim.
//
// Handles are not safe for concurrent mutation; confine each handle to one
// goroutine or synchronize externally. The registries they point at are
// concurrency-safe on their own.
package handle
