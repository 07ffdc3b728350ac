package trail_test

import (
	"testing"

	"github.com/katalvlaran/gac-alldiff/trail"
)

func TestTrail_UndoToRestoresLIFO(t *testing.T) {
	tr := trail.New()
	var log []int

	m0 := tr.Mark()
	tr.Save(func() { log = append(log, 1) })
	tr.Save(func() { log = append(log, 2) })
	tr.Save(func() { log = append(log, 3) })

	tr.UndoTo(m0)

	want := []int{3, 2, 1}
	if len(log) != len(want) {
		t.Fatalf("log = %v; want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %d; want %d", i, log[i], want[i])
		}
	}
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d; want 0", tr.Depth())
	}
}

func TestTrail_NestedMarks(t *testing.T) {
	tr := trail.New()
	var log []string

	tr.Save(func() { log = append(log, "outer") })
	inner := tr.Mark()
	tr.Save(func() { log = append(log, "inner-1") })
	tr.Save(func() { log = append(log, "inner-2") })

	tr.UndoTo(inner)
	if len(log) != 2 || log[0] != "inner-2" || log[1] != "inner-1" {
		t.Fatalf("inner undo log = %v", log)
	}
	if tr.Depth() != 1 {
		t.Errorf("Depth() after inner undo = %d; want 1", tr.Depth())
	}

	tr.UndoTo(0)
	if len(log) != 3 || log[2] != "outer" {
		t.Fatalf("outer undo log = %v", log)
	}
}

func TestTrail_UndoToPastDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range UndoTo")
		}
	}()
	tr := trail.New()
	tr.UndoTo(5)
}

func TestTrail_SaveNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil undo closure")
		}
	}()
	trail.New().Save(nil)
}
