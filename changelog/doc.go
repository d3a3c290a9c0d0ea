// Package changelog provides the difference-list collaborator for
// coordinated handle mutation.
//
// A Log collects one record per coordinated Set, capturing the handle and
// the indices it moved between, and can replay the whole history in
// reverse:
//
//	undo := changelog.New()
//
//	v.SetLogged("red", undo)
//	v.SetLogged("blue", undo)
//
//	undo.UndoAll() // v is back to its pre-"red" state
//
// Record never calls into the domain registry, so logging a mutation
// cannot re-enter registry locks.
package changelog
