package redact

// DefaultHistoryLimit is the number of snapshots a History retains before
// it starts discarding the oldest on each save.
const DefaultHistoryLimit = 50

// History is a bounded undo/redo stack over snapshots of T. In this system
// T is a region list, but nothing here depends on that.
//
// Snapshots sit in a fixed-capacity ring with a cursor at the current state.
// Saving while the cursor is behind the end discards the redo branch first;
// saving at capacity drops the oldest snapshot in O(1) and shifts the cursor
// down so it still points at the just-saved state.
//
// A History is not safe for concurrent use. It models a single editing
// session; callers that share one across goroutines must serialize access.
type History[T any] struct {
	buf    []T
	start  int // ring index of the oldest snapshot
	length int
	cursor int // logical index of the current snapshot, -1 when empty
}

// NewHistory creates an empty history holding at most limit snapshots.
// A limit below 1 falls back to DefaultHistoryLimit.
func NewHistory[T any](limit int) *History[T] {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History[T]{buf: make([]T, limit), cursor: -1}
}

func (h *History[T]) at(i int) T {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Save records state as the new current snapshot. Any redo branch beyond
// the cursor is discarded.
func (h *History[T]) Save(state T) {
	h.length = h.cursor + 1
	if h.length == len(h.buf) {
		h.start = (h.start + 1) % len(h.buf)
		h.length--
		h.cursor--
	}
	h.buf[(h.start+h.length)%len(h.buf)] = state
	h.length++
	h.cursor++
}

// Undo steps the cursor back one snapshot and returns it. It reports false
// and leaves the cursor alone when there is nothing earlier to return.
func (h *History[T]) Undo() (T, bool) {
	var zero T
	if h.cursor <= 0 {
		return zero, false
	}
	h.cursor--
	return h.at(h.cursor), true
}

// Redo steps the cursor forward one snapshot and returns it. It reports
// false when the cursor is already at the newest snapshot.
func (h *History[T]) Redo() (T, bool) {
	var zero T
	if h.cursor >= h.length-1 {
		return zero, false
	}
	h.cursor++
	return h.at(h.cursor), true
}

// Current returns the snapshot at the cursor without moving it.
func (h *History[T]) Current() (T, bool) {
	var zero T
	if h.cursor < 0 {
		return zero, false
	}
	return h.at(h.cursor), true
}

// Clear empties the history and releases the retained snapshots.
func (h *History[T]) Clear() {
	var zero T
	for i := range h.buf {
		h.buf[i] = zero
	}
	h.start = 0
	h.length = 0
	h.cursor = -1
}

// CanUndo reports whether Undo would return a snapshot.
func (h *History[T]) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would return a snapshot.
func (h *History[T]) CanRedo() bool { return h.cursor < h.length-1 }

// Len returns the number of snapshots currently held.
func (h *History[T]) Len() int { return h.length }
