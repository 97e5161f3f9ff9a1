package evidence

import (
	"slices"
	"testing"
)

func collect(s *ClueSet) []string {
	var out []string
	for id := range s.InOrder() {
		out = append(out, id)
	}
	return out
}

func TestClueSet_InsertAndContains(t *testing.T) {
	s := NewClueSet()

	if s.Contains("pegada molhada") {
		t.Error("empty set should not contain anything")
	}
	if !s.Insert("pegada molhada") {
		t.Error("first insert should report a new entry")
	}
	if !s.Contains("pegada molhada") {
		t.Error("inserted clue should be contained")
	}
	if s.Insert("pegada molhada") {
		t.Error("duplicate insert should report no new entry")
	}
	if s.Len() != 1 {
		t.Errorf("expected size 1 after duplicate insert, got %d", s.Len())
	}
}

func TestClueSet_DuplicateLeavesOrderUnchanged(t *testing.T) {
	s := NewClueSet()
	for _, id := range []string{"fio de cabelo", "bilhete rasgado", "pegada molhada"} {
		s.Insert(id)
	}
	before := collect(s)

	s.Insert("bilhete rasgado")

	after := collect(s)
	if !slices.Equal(before, after) {
		t.Errorf("in-order listing changed after duplicate insert: %v vs %v", before, after)
	}
	if s.Len() != 3 {
		t.Errorf("expected size 3, got %d", s.Len())
	}
}

func TestClueSet_InOrderIsSortedForAnyInsertionOrder(t *testing.T) {
	orders := [][]string{
		{"a", "b", "c", "d"},                 // ascending, degenerate right chain
		{"d", "c", "b", "a"},                 // descending, degenerate left chain
		{"c", "a", "d", "b"},                // mixed
		{"c", "a", "d", "b", "c", "a", "d"}, // with duplicates
		{"luva", "Luva", "luva de couro"},   // case and prefix sensitivity
	}
	for _, order := range orders {
		s := NewClueSet()
		for _, id := range order {
			s.Insert(id)
		}

		got := collect(s)
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Errorf("insertion order %v: listing not strictly ascending at %d: %v", order, i, got)
			}
		}
	}
}

func TestClueSet_InOrderIsRestartable(t *testing.T) {
	s := NewClueSet()
	s.Insert("b")
	s.Insert("a")
	s.Insert("c")

	seq := s.InOrder()

	// Partial consumption must not poison a later full walk.
	for range seq {
		break
	}

	first := collect(s)
	second := collect(s)
	if !slices.Equal(first, second) {
		t.Errorf("two full walks disagree: %v vs %v", first, second)
	}
	if !slices.Equal(first, []string{"a", "b", "c"}) {
		t.Errorf("unexpected listing: %v", first)
	}
}

func TestClueSet_CaseSensitive(t *testing.T) {
	s := NewClueSet()
	if !s.Insert("Pegada") {
		t.Fatal("insert failed")
	}
	if s.Contains("pegada") {
		t.Error("comparison must be case-sensitive")
	}
	if !s.Insert("pegada") {
		t.Error("differently-cased identifier is a distinct clue")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 distinct clues, got %d", s.Len())
	}
}
