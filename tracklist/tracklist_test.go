package tracklist_test

import (
	"testing"

	"github.com/katalvlaran/gac-alldiff/tracklist"
	"github.com/katalvlaran/gac-alldiff/trail"
)

// TestList_RemoveRefillRestoresOrder checks a concrete scenario: on
// [1,10], remove 5 then 6; TrackLeft(6)=4, TrackLeft(5)=4,
// TrackLeft(7)=7; refill restores all 10 elements.
func TestList_RemoveRefillRestoresOrder(t *testing.T) {
	l := tracklist.New(1, 10)

	l.Remove(5)
	l.Remove(6)

	if got := l.TrackLeft(6); got != 4 {
		t.Errorf("TrackLeft(6) = %d; want 4", got)
	}
	if got := l.TrackLeft(5); got != 4 {
		t.Errorf("TrackLeft(5) = %d; want 4", got)
	}
	if got := l.TrackLeft(7); got != 7 {
		t.Errorf("TrackLeft(7) = %d; want 7", got)
	}

	l.Refill()
	if l.GetSize() != 10 {
		t.Fatalf("GetSize() after refill = %d; want 10", l.GetSize())
	}
	for v := 1; v <= 10; v++ {
		if !l.IsPresent(v) {
			t.Errorf("%d not present after refill", v)
		}
	}
}

func TestList_SourceSinkTraversal(t *testing.T) {
	l := tracklist.New(1, 5)
	node := l.Source()
	var order []int
	for l.HasNext(node) {
		node = l.GetNext(node)
		order = append(order, node)
	}
	want := []int{1, 2, 3, 4, 5}
	if len(order) != len(want) {
		t.Fatalf("order = %v; want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d; want %d", i, order[i], want[i])
		}
	}
}

func TestList_RemoveThenRefillIsIdempotentOnEmptyStack(t *testing.T) {
	l := tracklist.New(1, 3)
	l.Remove(2)
	l.Refill()
	l.Refill() // no-op, stack already empty
	if l.GetSize() != 3 {
		t.Fatalf("GetSize() = %d; want 3", l.GetSize())
	}
}

func TestList_RemoveFromUniverseTrackedUndoes(t *testing.T) {
	l := tracklist.New(1, 5)
	tr := trail.New()
	mark := tr.Mark()

	l.RemoveFromUniverseTracked(3, tr)
	if l.GetUniverseSize() != 4 {
		t.Fatalf("GetUniverseSize() = %d; want 4", l.GetUniverseSize())
	}
	if l.IsPresent(3) {
		t.Fatalf("3 should not be present after RemoveFromUniverseTracked")
	}

	tr.UndoTo(mark)
	if l.GetUniverseSize() != 5 {
		t.Fatalf("GetUniverseSize() after undo = %d; want 5", l.GetUniverseSize())
	}
	if !l.IsPresent(3) {
		t.Fatalf("3 should be present again after undo")
	}
	// Traversal order must be exactly restored.
	node := l.Source()
	var order []int
	for l.HasNext(node) {
		node = l.GetNext(node)
		order = append(order, node)
	}
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order after undo = %v; want %v", order, want)
		}
	}
}

func TestList_RemoveFromUniversePreconditionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when stackRemoved is non-empty")
		}
	}()
	l := tracklist.New(1, 5)
	l.Remove(3)
	l.RemoveFromUniverse(4) // stackRemoved not empty: must panic
}

func TestList_RemovePreconditionPanicsOnAbsentElement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when removing an already-removed element")
		}
	}()
	l := tracklist.New(1, 5)
	l.Remove(3)
	l.Remove(3)
}

func TestList_TrackLeftReturnsSourceWhenNoPresentPredecessor(t *testing.T) {
	l := tracklist.New(1, 5)
	l.Remove(1)
	l.Remove(2)
	if got := l.TrackLeft(2); got != l.Source() {
		t.Errorf("TrackLeft(2) = %d; want Source() = %d", got, l.Source())
	}
}

func TestList_EmptyAndSizeBookkeeping(t *testing.T) {
	l := tracklist.New(1, 3)
	if l.IsEmpty() {
		t.Fatalf("fresh list reported empty")
	}
	l.Remove(1)
	l.Remove(2)
	l.Remove(3)
	if !l.IsEmpty() {
		t.Fatalf("fully-removed list should report empty")
	}
	if l.GetSize() != 0 {
		t.Fatalf("GetSize() = %d; want 0", l.GetSize())
	}
	if l.GetUniverseSize() != 3 {
		t.Fatalf("GetUniverseSize() = %d; want 3 (universe unaffected by Remove)", l.GetUniverseSize())
	}
}
