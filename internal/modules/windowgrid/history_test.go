package windowgrid

import (
	"testing"

	"github.com/dbmrq/spoons/internal/model"
)

func frameN(n int) model.Rect {
	return model.Rect{X: n * 10, Y: n * 10, Width: 100, Height: 100}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	const id model.WindowID = 1

	// The window went frame0 -> frame1 -> frame2 (current).
	h.Record(id, frameN(0))
	h.Record(id, frameN(1))
	current := frameN(2)

	got, ok := h.Undo(id, current)
	if !ok || got != frameN(1) {
		t.Fatalf("first undo = %+v ok=%v, want %+v", got, ok, frameN(1))
	}
	current = got

	got, ok = h.Undo(id, current)
	if !ok || got != frameN(0) {
		t.Fatalf("second undo = %+v ok=%v, want %+v", got, ok, frameN(0))
	}
	current = got

	if _, ok := h.Undo(id, current); ok {
		t.Fatal("expected nothing left to undo")
	}

	got, ok = h.Redo(id, current)
	if !ok || got != frameN(1) {
		t.Fatalf("redo = %+v ok=%v, want %+v", got, ok, frameN(1))
	}
	current = got

	got, ok = h.Redo(id, current)
	if !ok || got != frameN(2) {
		t.Fatalf("second redo = %+v ok=%v, want %+v", got, ok, frameN(2))
	}
	current = got

	if _, ok := h.Redo(id, current); ok {
		t.Fatal("expected nothing left to redo")
	}
}

func TestHistoryRecordDiscardsRedoTail(t *testing.T) {
	h := NewHistory(10)
	const id model.WindowID = 1

	h.Record(id, frameN(0))
	h.Record(id, frameN(1))

	current := frameN(2)
	restored, _ := h.Undo(id, current)
	current = restored

	// A fresh change after an undo forks the history: redo must be gone.
	h.Record(id, current)
	if _, ok := h.Redo(id, frameN(3)); ok {
		t.Error("redo should be discarded after a new record")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	const id model.WindowID = 7

	for i := 0; i < 5; i++ {
		h.Record(id, frameN(i))
	}
	if got := h.Len(id); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}

	// Undo all the way: the oldest reachable frame is frame2.
	current := frameN(5)
	var last model.Rect
	for {
		restored, ok := h.Undo(id, current)
		if !ok {
			break
		}
		last = restored
		current = restored
	}
	if last != frameN(2) {
		t.Errorf("deepest undo = %+v, want %+v", last, frameN(2))
	}
}

func TestHistoryUnknownWindow(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Undo(99, frameN(0)); ok {
		t.Error("undo for unknown window should fail")
	}
	if _, ok := h.Redo(99, frameN(0)); ok {
		t.Error("redo for unknown window should fail")
	}
}

func TestHistoryIndependentPerWindow(t *testing.T) {
	h := NewHistory(5)
	h.Record(1, frameN(1))
	h.Record(2, frameN(2))

	if got, ok := h.Undo(1, frameN(9)); !ok || got != frameN(1) {
		t.Errorf("window 1 undo = %+v ok=%v", got, ok)
	}
	if got, ok := h.Undo(2, frameN(9)); !ok || got != frameN(2) {
		t.Errorf("window 2 undo = %+v ok=%v", got, ok)
	}
}
