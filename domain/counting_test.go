package domain

import (
	"testing"

	"github.com/varmodel/catdomain/errors"
)

func ingest(reg *CountingRegistry[string], tokens ...string) []int32 {
	out := make([]int32, len(tokens))
	for i, tok := range tokens {
		out[i] = reg.Index(tok)
	}
	return out
}

func TestCountingRegistry_Counts(t *testing.T) {
	reg := NewCountingRegistry[string]()

	indices := ingest(reg, "a", "b", "a", "c", "b", "a")

	want := []int32{0, 1, 0, 2, 1, 0}
	for i, idx := range indices {
		if idx != want[i] {
			t.Fatalf("intern sequence[%d] = %d, want %d", i, idx, want[i])
		}
	}

	counts := reg.Counts()
	wantCounts := []uint64{3, 2, 1}
	if len(counts) != len(wantCounts) {
		t.Fatalf("len(counts) = %d, want %d", len(counts), len(wantCounts))
	}
	for i, c := range counts {
		if c != wantCounts[i] {
			t.Fatalf("counts[%d] = %d, want %d", i, c, wantCounts[i])
		}
	}

	c, err := reg.Count(0)
	if err != nil {
		t.Fatalf("Count(0) failed: %v", err)
	}
	if c != 3 {
		t.Fatalf("Count(0) = %d, want 3", c)
	}

	if _, err := reg.Count(3); !errors.IsKind(err, errors.KindIndexOutOfRange) {
		t.Fatalf("Count(3) error = %v, want index_out_of_range", err)
	}
}

func TestCountingRegistry_TrimToSize(t *testing.T) {
	reg := NewCountingRegistry[string]()
	ingest(reg, "a", "b", "a", "c", "b", "a")

	if err := reg.TrimToSize(2); err != nil {
		t.Fatalf("TrimToSize(2) failed: %v", err)
	}

	if n := reg.AllocSize(); n != 2 {
		t.Fatalf("AllocSize after trim = %d, want 2", n)
	}
	if g := reg.Generation(); g != 1 {
		t.Fatalf("Generation after trim = %d, want 1", g)
	}

	// Survivors keep rank order: highest count first
	vals := reg.Values()
	if vals[0] != "a" || vals[1] != "b" {
		t.Fatalf("Values after trim = %v, want [a b]", vals)
	}
	if i := reg.Index("a"); i != 0 {
		t.Fatalf("Index(a) after trim = %d, want 0", i)
	}
	if i := reg.Index("b"); i != 1 {
		t.Fatalf("Index(b) after trim = %d, want 1", i)
	}

	// A dropped value re-interns at the next free slot
	if i := reg.Index("c"); i != 2 {
		t.Fatalf("Index(c) after trim = %d, want 2", i)
	}
}

func TestCountingRegistry_TrimResetsCounts(t *testing.T) {
	reg := NewCountingRegistry[string]()
	ingest(reg, "a", "a", "a", "b")

	if err := reg.TrimToSize(2); err != nil {
		t.Fatalf("TrimToSize failed: %v", err)
	}

	// Counts restart for the re-ingestion pass
	for i, c := range reg.Counts() {
		if c != 0 {
			t.Fatalf("counts[%d] = %d after trim, want 0", i, c)
		}
	}

	reg.Index("a")
	if c, _ := reg.Count(0); c != 1 {
		t.Fatalf("Count(0) after re-ingest = %d, want 1", c)
	}
}

func TestCountingRegistry_TrimBelowCount(t *testing.T) {
	reg := NewCountingRegistry[string]()
	ingest(reg, "x", "y", "y", "z", "z", "z", "w")

	if err := reg.TrimBelowCount(2); err != nil {
		t.Fatalf("TrimBelowCount(2) failed: %v", err)
	}

	vals := reg.Values()
	if len(vals) != 2 || vals[0] != "z" || vals[1] != "y" {
		t.Fatalf("Values after trim = %v, want [z y]", vals)
	}
}

func TestCountingRegistry_TrimTieBreak(t *testing.T) {
	reg := NewCountingRegistry[string]()
	// All counts equal: rank must fall back to original index order
	ingest(reg, "c", "a", "b")

	if err := reg.TrimToSize(2); err != nil {
		t.Fatalf("TrimToSize failed: %v", err)
	}

	vals := reg.Values()
	if vals[0] != "c" || vals[1] != "a" {
		t.Fatalf("tie-break by original index violated: %v", vals)
	}
}

func TestCountingRegistry_TrimEmptyDomain(t *testing.T) {
	tests := []struct {
		name string
		call func(*CountingRegistry[string]) error
	}{
		{"threshold above all counts", func(r *CountingRegistry[string]) error {
			return r.TrimBelowCount(100)
		}},
		{"zero max size", func(r *CountingRegistry[string]) error {
			return r.TrimToSize(0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewCountingRegistry[string]()
			ingest(reg, "a", "b")

			err := tt.call(reg)
			if !errors.IsKind(err, errors.KindEmptyDomain) {
				t.Fatalf("error = %v, want empty_domain", err)
			}

			// Failed trims must not mutate the registry
			if n := reg.AllocSize(); n != 2 {
				t.Fatalf("registry mutated by failed trim: size %d", n)
			}
			if g := reg.Generation(); g != 0 {
				t.Fatalf("generation bumped by failed trim: %d", g)
			}
		})
	}
}

func TestCountingRegistry_TrimObserver(t *testing.T) {
	reg := NewCountingRegistry[string]()
	obs := &testObserver{}
	reg.Subscribe(obs)

	ingest(reg, "a", "a", "b")
	if err := reg.TrimToSize(1); err != nil {
		t.Fatalf("TrimToSize failed: %v", err)
	}

	events := obs.snapshot()
	last := events[len(events)-1]
	if last.Type != EventTrimmed {
		t.Fatalf("last event type = %v, want EventTrimmed", last.Type)
	}
	if last.Size != 1 || last.Generation != 1 {
		t.Fatalf("unexpected trim event: %+v", last)
	}
}

func TestCountingRegistry_TrimLargerThanSize(t *testing.T) {
	reg := NewCountingRegistry[string]()
	ingest(reg, "a", "b")

	// maxSize above current size keeps everything but still remaps
	if err := reg.TrimToSize(10); err != nil {
		t.Fatalf("TrimToSize(10) failed: %v", err)
	}
	if n := reg.AllocSize(); n != 2 {
		t.Fatalf("AllocSize = %d, want 2", n)
	}
	if g := reg.Generation(); g != 1 {
		t.Fatalf("Generation = %d, want 1", g)
	}
}

func TestRestoreCountingRegistry(t *testing.T) {
	reg, err := RestoreCountingRegistry([]string{"a", "b", "c"}, []uint64{5, 3, 1})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if i := reg.Index("b"); i != 1 {
		t.Fatalf("Index(b) = %d, want 1", i)
	}
	// The restore Index call above bumped b's count
	if c, _ := reg.Count(1); c != 4 {
		t.Fatalf("Count(1) = %d, want 4", c)
	}
}

func TestRestoreCountingRegistry_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		counts []uint64
	}{
		{"length mismatch", []string{"a", "b"}, []uint64{1}},
		{"duplicate value", []string{"a", "a"}, []uint64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RestoreCountingRegistry(tt.values, tt.counts)
			if !errors.IsKind(err, errors.KindCorruptSnapshot) {
				t.Fatalf("error = %v, want corrupt_snapshot", err)
			}
		})
	}
}
