package changelog

import (
	"sync"

	"github.com/varmodel/catdomain"
)

// Record is one reversible mutation: the handle that moved and the indices
// it moved between. Old is -1 when the handle was unset before the
// mutation.
type Record struct {
	Handle catdomain.Mutable
	Old    int32
	New    int32
}

// Log is an append-only difference list of handle mutations. It implements
// catdomain.Recorder, so it can be passed directly to the coordinated
// mutation methods on Variable handles.
type Log struct {
	mu      sync.Mutex
	records []Record
}

var _ catdomain.Recorder = (*Log)(nil)

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// Record appends one undo record. It never touches the domain registry.
func (l *Log) Record(h catdomain.Mutable, oldIndex, newIndex int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{Handle: h, Old: oldIndex, New: newIndex})
}

// Len returns the number of recorded mutations.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Records returns a copy of the log in append order.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// UndoAll replays the log in reverse, restoring every handle to the index
// it held before its earliest recorded mutation, then clears the log.
// Replay stops at the first failing restore and leaves the unapplied
// prefix in place.
func (l *Log) UndoAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.records) - 1; i >= 0; i-- {
		rec := l.records[i]
		if rec.Old < 0 {
			rec.Handle.Reset()
		} else if err := rec.Handle.SetIndex(rec.Old); err != nil {
			l.records = l.records[:i+1]
			return err
		}
		l.records = l.records[:i]
	}
	return nil
}

// Reset discards all records without replaying them.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = l.records[:0]
}
