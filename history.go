package chromix

import "errors"

// DefaultHistoryLimit bounds the number of retained snapshots.
const DefaultHistoryLimit = 20

// ErrSnapshotIndex is returned by Restore for an out-of-range position.
var ErrSnapshotIndex = errors.New("chromix: snapshot index out of range")

// HistoryStack is a linear undo/redo snapshot manager over a palette's blob
// list. Every snapshot is an independent deep copy: edits to the live list
// can never corrupt past entries, and every read out of history is a fresh
// copy.
//
// HistoryStack is owned one-per-active-editing-session and is replaced when
// a different palette becomes active.
type HistoryStack struct {
	snapshots [][]Blob
	position  int
	limit     int
}

// NewHistoryStack creates an empty history bounded to limit snapshots.
// A non-positive limit uses DefaultHistoryLimit.
func NewHistoryStack(limit int) *HistoryStack {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryStack{position: -1, limit: limit}
}

// Len returns the number of retained snapshots.
func (h *HistoryStack) Len() int { return len(h.snapshots) }

// Position returns the current snapshot index, or -1 when empty.
func (h *HistoryStack) Position() int { return h.position }

// Limit returns the snapshot bound.
func (h *HistoryStack) Limit() int { return h.limit }

// Save deep-copies the blob list and appends it as the new current snapshot.
// Saving at a non-terminal position truncates every later snapshot (standard
// linear undo semantics: a new edit discards the redo branch). When the
// bound is exceeded the oldest snapshot is evicted and the position shifts
// down so it still addresses the just-saved snapshot.
func (h *HistoryStack) Save(blobs []Blob) {
	if h.position < len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.position+1]
	}
	h.snapshots = append(h.snapshots, cloneBlobs(blobs))
	h.position = len(h.snapshots) - 1

	if len(h.snapshots) > h.limit {
		over := len(h.snapshots) - h.limit
		h.snapshots = append(h.snapshots[:0], h.snapshots[over:]...)
		h.position -= over
	}
}

// Undo steps back one snapshot and returns a copy of it. Reports false,
// without moving, when there is nothing to undo.
func (h *HistoryStack) Undo() ([]Blob, bool) {
	if h.position <= 0 {
		return nil, false
	}
	h.position--
	return cloneBlobs(h.snapshots[h.position]), true
}

// Redo steps forward one snapshot and returns a copy of it. Reports false,
// without moving, when there is nothing to redo.
func (h *HistoryStack) Redo() ([]Blob, bool) {
	if h.position >= len(h.snapshots)-1 {
		return nil, false
	}
	h.position++
	return cloneBlobs(h.snapshots[h.position]), true
}

// Restore returns a copy of the snapshot at the given position and makes it
// current. The stored snapshot is never exposed directly.
func (h *HistoryStack) Restore(position int) ([]Blob, error) {
	if position < 0 || position >= len(h.snapshots) {
		return nil, ErrSnapshotIndex
	}
	h.position = position
	return cloneBlobs(h.snapshots[position]), nil
}

// Current returns a copy of the snapshot at the current position.
// Reports false when the stack is empty.
func (h *HistoryStack) Current() ([]Blob, bool) {
	if h.position < 0 {
		return nil, false
	}
	return cloneBlobs(h.snapshots[h.position]), true
}
