package redact

import "testing"

func TestHistory_EmptyState(t *testing.T) {
	h := NewHistory[int](10)

	if h.Len() != 0 {
		t.Errorf("Len: got %d, want 0", h.Len())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports undo/redo available")
	}
	if _, ok := h.Current(); ok {
		t.Error("Current on empty history returned a value")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history returned a value")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on empty history returned a value")
	}
}

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	h := NewHistory[string](10)
	h.Save("a")
	h.Save("b")
	h.Save("c")

	got, ok := h.Undo()
	if !ok || got != "b" {
		t.Fatalf("Undo: got %q/%v, want \"b\"/true", got, ok)
	}
	got, ok = h.Redo()
	if !ok || got != "c" {
		t.Fatalf("Redo: got %q/%v, want \"c\"/true", got, ok)
	}
	if cur, _ := h.Current(); cur != "c" {
		t.Errorf("Current after round trip: got %q, want \"c\"", cur)
	}
}

func TestHistory_UndoStopsAtOldest(t *testing.T) {
	h := NewHistory[int](10)
	h.Save(1)
	h.Save(2)

	if got, ok := h.Undo(); !ok || got != 1 {
		t.Fatalf("first Undo: got %d/%v", got, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo past the oldest snapshot returned a value")
	}
	if cur, _ := h.Current(); cur != 1 {
		t.Errorf("cursor moved past the oldest snapshot: Current=%d", cur)
	}
}

func TestHistory_SaveDiscardsRedoBranch(t *testing.T) {
	h := NewHistory[int](10)
	h.Save(1)
	h.Save(2)
	h.Save(3)

	h.Undo() // back to 2
	h.Undo() // back to 1
	h.Save(9)

	if _, ok := h.Redo(); ok {
		t.Error("Redo returned a value after Save discarded the branch")
	}
	if h.CanRedo() {
		t.Error("CanRedo true after branch discard")
	}
	if h.Len() != 2 {
		t.Errorf("Len: got %d, want 2 (1 and 9)", h.Len())
	}
	if cur, _ := h.Current(); cur != 9 {
		t.Errorf("Current: got %d, want 9", cur)
	}
}

func TestHistory_CapDropsOldest(t *testing.T) {
	h := NewHistory[int](50)
	for i := 1; i <= 51; i++ {
		h.Save(i)
	}

	if h.Len() != 50 {
		t.Fatalf("Len: got %d, want 50", h.Len())
	}
	if cur, _ := h.Current(); cur != 51 {
		t.Fatalf("Current: got %d, want 51", cur)
	}

	// Walk all the way back: the oldest reachable state is 2, not 1.
	last := 51
	for {
		v, ok := h.Undo()
		if !ok {
			break
		}
		last = v
	}
	if last != 2 {
		t.Errorf("oldest reachable state: got %d, want 2", last)
	}
}

func TestHistory_CursorStillCurrentAfterCapShift(t *testing.T) {
	h := NewHistory[int](3)
	h.Save(1)
	h.Save(2)
	h.Save(3)
	h.Save(4) // drops 1

	if cur, _ := h.Current(); cur != 4 {
		t.Errorf("Current after overflow: got %d, want 4", cur)
	}
	if got, _ := h.Undo(); got != 3 {
		t.Errorf("Undo after overflow: got %d, want 3", got)
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory[[]int](5)
	h.Save([]int{1})
	h.Save([]int{1, 2})

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", h.Len())
	}
	if _, ok := h.Current(); ok {
		t.Error("Current returned a value after Clear")
	}

	// Still usable after Clear.
	h.Save([]int{7})
	if cur, _ := h.Current(); len(cur) != 1 || cur[0] != 7 {
		t.Errorf("Current after reuse: got %v, want [7]", cur)
	}
}

func TestHistory_CanUndoCanRedoDoNotMutate(t *testing.T) {
	h := NewHistory[int](5)
	h.Save(1)
	h.Save(2)

	for i := 0; i < 3; i++ {
		h.CanUndo()
		h.CanRedo()
	}
	if cur, _ := h.Current(); cur != 2 {
		t.Errorf("queries moved the cursor: Current=%d", cur)
	}
}

func TestHistory_LimitFallback(t *testing.T) {
	h := NewHistory[int](0)
	for i := 0; i < DefaultHistoryLimit+5; i++ {
		h.Save(i)
	}
	if h.Len() != DefaultHistoryLimit {
		t.Errorf("Len: got %d, want %d", h.Len(), DefaultHistoryLimit)
	}
}
