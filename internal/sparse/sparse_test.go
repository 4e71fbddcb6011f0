package sparse

import "testing"

func TestSetInsertContains(t *testing.T) {
	s := New(32)
	if s.Size() != 0 {
		t.Fatalf("new set size = %d, want 0", s.Size())
	}
	if s.Contains(5) {
		t.Fatal("empty set should not contain 5")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Fatal("set should contain 5 after insert")
	}
	s.Insert(5) // duplicate, no-op
	if s.Size() != 1 {
		t.Fatalf("size after duplicate insert = %d, want 1", s.Size())
	}

	s.Insert(10)
	s.Insert(3)
	if s.Size() != 3 {
		t.Fatalf("size = %d, want 3", s.Size())
	}
}

func TestSetClear(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if s.Size() != 0 {
		t.Fatalf("size after Clear = %d, want 0", s.Size())
	}
	if s.Contains(1) {
		t.Fatal("cleared set should not contain 1")
	}
}

func TestSetValues(t *testing.T) {
	s := New(8)
	s.Insert(4)
	s.Insert(1)
	s.Insert(6)

	seen := map[uint32]bool{}
	for _, v := range s.Values() {
		seen[v] = true
	}
	for _, want := range []uint32{4, 1, 6} {
		if !seen[want] {
			t.Errorf("Values() missing %d", want)
		}
	}
	if len(s.Values()) != 3 {
		t.Fatalf("Values() len = %d, want 3", len(s.Values()))
	}
}

func TestSetOutOfRangeContains(t *testing.T) {
	s := New(4)
	if s.Contains(100) {
		t.Fatal("Contains on out-of-range value should be false, not panic")
	}
}
