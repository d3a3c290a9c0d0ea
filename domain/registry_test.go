package domain

import (
	"sync"
	"testing"

	"github.com/varmodel/catdomain/errors"
)

type testObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *testObserver) OnDomainEvent(e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *testObserver) snapshot() []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Event(nil), o.events...)
}

func TestRegistry_Basic(t *testing.T) {
	reg := NewRegistry[string]()

	// Fresh interns get dense indices in insertion order
	if i := reg.Index("red"); i != 0 {
		t.Fatalf("expected index 0, got %d", i)
	}
	if i := reg.Index("green"); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}

	// Idempotence: repeat intern returns the same index without growth
	if i := reg.Index("red"); i != 0 {
		t.Fatalf("repeat intern returned %d, want 0", i)
	}
	if n := reg.AllocSize(); n != 2 {
		t.Fatalf("AllocSize = %d, want 2", n)
	}
	if n := reg.Size(); n != 2 {
		t.Fatalf("Size = %d, want 2", n)
	}

	// Round-trip
	v, err := reg.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if v != "green" {
		t.Fatalf("Get(1) = %q, want %q", v, "green")
	}
}

func TestRegistry_GetOutOfRange(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Index("only")

	tests := []struct {
		name  string
		index int32
	}{
		{"negative", -1},
		{"at size", 1},
		{"past size", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Get(tt.index)
			if err == nil {
				t.Fatalf("Get(%d) succeeded, want error", tt.index)
			}
			if !errors.IsKind(err, errors.KindIndexOutOfRange) {
				t.Fatalf("Get(%d) error kind = %v, want index_out_of_range", tt.index, err)
			}
		})
	}
}

func TestRegistry_Uniqueness(t *testing.T) {
	reg := NewRegistry[int]()

	seen := make(map[int32]bool)
	for v := 0; v < 100; v++ {
		i := reg.Index(v * 7)
		if seen[i] {
			t.Fatalf("index %d issued twice", i)
		}
		seen[i] = true
	}
	if n := reg.AllocSize(); n != 100 {
		t.Fatalf("AllocSize = %d, want 100", n)
	}
}

func TestRegistry_Density(t *testing.T) {
	reg := NewRegistry[string]()
	words := []string{"a", "b", "c", "d", "e"}
	for _, w := range words {
		reg.Index(w)
	}

	// Every index in [0, n) resolves
	for i := int32(0); i < reg.AllocSize(); i++ {
		if _, err := reg.Get(i); err != nil {
			t.Fatalf("Get(%d) failed on dense registry: %v", i, err)
		}
	}
}

func TestRegistry_Generation(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Index("x")
	if g := reg.Generation(); g != 0 {
		t.Fatalf("base registry generation = %d, want 0", g)
	}
}

func TestRegistry_Observer(t *testing.T) {
	reg := NewRegistry[string]()
	obs := &testObserver{}
	reg.Subscribe(obs)

	reg.Index("a")
	reg.Index("a") // repeat, no event
	reg.Index("b")

	events := obs.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventInterned || events[0].Index != 0 {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Index != 1 || events[1].Size != 2 {
		t.Fatalf("unexpected second event: %+v", events[1])
	}

	reg.Unsubscribe(obs)
	reg.Index("c")
	if len(obs.snapshot()) != 2 {
		t.Fatal("observer received event after Unsubscribe")
	}
}

func TestRegistry_ConcurrentIntern(t *testing.T) {
	reg := NewRegistry[int]()

	const goroutines = 16
	const values = 200

	var wg sync.WaitGroup
	results := make([][]int32, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g] = make([]int32, values)
			for v := 0; v < values; v++ {
				results[g][v] = reg.Index(v)
			}
		}(g)
	}
	wg.Wait()

	// All goroutines must agree on every value's index
	for g := 1; g < goroutines; g++ {
		for v := 0; v < values; v++ {
			if results[g][v] != results[0][v] {
				t.Fatalf("goroutine %d saw index %d for value %d, goroutine 0 saw %d",
					g, results[g][v], v, results[0][v])
			}
		}
	}
	if n := reg.AllocSize(); n != values {
		t.Fatalf("AllocSize = %d, want %d", n, values)
	}
}

func TestRegistry_Values(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Index("a")
	reg.Index("b")

	vals := reg.Values()
	if len(vals) != 2 || vals[0] != "a" || vals[1] != "b" {
		t.Fatalf("Values = %v, want [a b]", vals)
	}

	// Mutating the copy must not affect the registry
	vals[0] = "z"
	if v, _ := reg.Get(0); v != "a" {
		t.Fatal("Values returned aliased storage")
	}
}
