package windowgrid

import "github.com/dbmrq/spoons/internal/model"

// History keeps a bounded per-window list of past frames with a cursor for
// undo/redo. Rings are created lazily on the first recorded change; entries
// for windows that have since closed stay until the process exits.
type History struct {
	depth int
	rings map[model.WindowID]*ring
}

type ring struct {
	frames []model.Rect
	cursor int // ∈ [0, len(frames)]: number of undoable entries
}

// NewHistory creates a history keeping at most depth frames per window.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth, rings: make(map[model.WindowID]*ring)}
}

// Record saves the frame a window had before a change. Recording discards
// any redo entries past the cursor and evicts the oldest frame at capacity.
func (h *History) Record(id model.WindowID, frame model.Rect) {
	r := h.rings[id]
	if r == nil {
		r = &ring{}
		h.rings[id] = r
	}
	r.frames = r.frames[:r.cursor]
	r.frames = append(r.frames, frame)
	if len(r.frames) > h.depth {
		r.frames = r.frames[1:]
	}
	r.cursor = len(r.frames)
}

// Undo returns the frame to restore, exchanging it for current so Redo can
// come back. ok=false when there is nothing to undo.
func (h *History) Undo(id model.WindowID, current model.Rect) (model.Rect, bool) {
	r := h.rings[id]
	if r == nil || r.cursor == 0 {
		return model.Rect{}, false
	}
	r.cursor--
	restored := r.frames[r.cursor]
	r.frames[r.cursor] = current
	return restored, true
}

// Redo reverses the most recent Undo. ok=false when there is nothing to
// redo.
func (h *History) Redo(id model.WindowID, current model.Rect) (model.Rect, bool) {
	r := h.rings[id]
	if r == nil || r.cursor == len(r.frames) {
		return model.Rect{}, false
	}
	restored := r.frames[r.cursor]
	r.frames[r.cursor] = current
	r.cursor++
	return restored, true
}

// Len returns how many frames are stored for the window.
func (h *History) Len(id model.WindowID) int {
	if r := h.rings[id]; r != nil {
		return len(r.frames)
	}
	return 0
}
