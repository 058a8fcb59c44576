// Package clipboard keeps a bounded history of copied and cut text and
// republishes it through a menu-bar menu.
package clipboard

import "sort"

// Bucket selects which history list an insert goes to.
type Bucket int

const (
	BucketCopy Bucket = iota
	BucketCut
)

func (b Bucket) String() string {
	if b == BucketCut {
		return "cut"
	}
	return "copy"
}

type entry struct {
	Text string `json:"text"`
	Seq  uint64 `json:"seq"`
}

// History holds the two bounded buckets. Not safe for concurrent use; the
// module serializes access.
type History struct {
	copyCap int
	cutCap  int
	seq     uint64

	// Oldest first. Eviction drops index 0.
	copies []entry
	cuts   []entry
}

// NewHistory creates an empty history. Capacities below 1 are treated as 1.
func NewHistory(copyCap, cutCap int) *History {
	if copyCap < 1 {
		copyCap = 1
	}
	if cutCap < 1 {
		cutCap = 1
	}
	return &History{copyCap: copyCap, cutCap: cutCap}
}

// Insert appends text to the bucket as the most recent entry. Any prior
// occurrence of the same text is removed from both buckets first; when the
// bucket is full the oldest entry is evicted. Empty strings are ignored.
func (h *History) Insert(b Bucket, text string) {
	if text == "" {
		return
	}
	h.copies = removeText(h.copies, text)
	h.cuts = removeText(h.cuts, text)

	h.seq++
	e := entry{Text: text, Seq: h.seq}
	switch b {
	case BucketCut:
		h.cuts = append(h.cuts, e)
		if len(h.cuts) > h.cutCap {
			h.cuts = h.cuts[1:]
		}
	default:
		h.copies = append(h.copies, e)
		if len(h.copies) > h.copyCap {
			h.copies = h.copies[1:]
		}
	}
}

func removeText(entries []entry, text string) []entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Text != text {
			out = append(out, e)
		}
	}
	return out
}

// Merged returns the texts of both buckets combined, most recent first.
func (h *History) Merged() []string {
	all := make([]entry, 0, len(h.copies)+len(h.cuts))
	all = append(all, h.copies...)
	all = append(all, h.cuts...)
	sort.Slice(all, func(i, j int) bool { return all[i].Seq > all[j].Seq })

	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.Text
	}
	return out
}

// Texts returns one bucket's contents, oldest first.
func (h *History) Texts(b Bucket) []string {
	entries := h.copies
	if b == BucketCut {
		entries = h.cuts
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// Len returns the total number of stored entries.
func (h *History) Len() int { return len(h.copies) + len(h.cuts) }

// Clear empties both buckets.
func (h *History) Clear() {
	h.copies = nil
	h.cuts = nil
}

// snapshot is the persisted form of the history.
type snapshot struct {
	Copies []entry `json:"copies"`
	Cuts   []entry `json:"cuts"`
	Seq    uint64  `json:"seq"`
}

func (h *History) snapshot() snapshot {
	return snapshot{Copies: h.copies, Cuts: h.cuts, Seq: h.seq}
}

// restore replaces the history with a persisted snapshot, re-applying the
// current capacities.
func (h *History) restore(s snapshot) {
	h.copies = trimOldest(s.Copies, h.copyCap)
	h.cuts = trimOldest(s.Cuts, h.cutCap)
	h.seq = s.Seq
}

func trimOldest(entries []entry, limit int) []entry {
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	if len(entries) == 0 {
		return nil
	}
	return append([]entry(nil), entries...)
}
