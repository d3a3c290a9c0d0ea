package domain

import "sync"

// Event types for registry lifecycle notifications.
type EventType uint8

const (
	// EventInterned fires when a fresh value is assigned a new index.
	// Repeat lookups of an existing value do not fire events.
	EventInterned EventType = iota

	// EventTrimmed fires after a trim rebuilds the index space.
	EventTrimmed
)

// Event represents a registry lifecycle event.
type Event struct {
	Value      any
	Index      int32
	Size       int32
	Generation uint64
	Type       EventType
}

// Observer receives notifications about registry lifecycle events.
//
// Observers run synchronously after the registry mutation completes and
// must not call back into the registry's mutating operations.
type Observer interface {
	OnDomainEvent(Event)
}

// notifier implements observer bookkeeping shared by both registry kinds.
type notifier struct {
	observers []Observer
	obsMu     sync.RWMutex
}

// Subscribe adds an observer for registry events.
func (n *notifier) Subscribe(o Observer) {
	n.obsMu.Lock()
	defer n.obsMu.Unlock()
	n.observers = append(n.observers, o)
}

// Unsubscribe removes an observer.
func (n *notifier) Unsubscribe(o Observer) {
	n.obsMu.Lock()
	defer n.obsMu.Unlock()
	for i, obs := range n.observers {
		if obs == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

func (n *notifier) notify(e Event) {
	n.obsMu.RLock()
	defer n.obsMu.RUnlock()
	for _, o := range n.observers {
		o.OnDomainEvent(e)
	}
}
