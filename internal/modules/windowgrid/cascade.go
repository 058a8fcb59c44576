package windowgrid

import (
	"sort"

	"github.com/dbmrq/spoons/internal/model"
)

// cascadeCopies reports whether two frames look like cascade-offset copies
// of each other: every coordinate differs by a whole multiple of spacing
// (zero included). Freshly cascaded stacks match this, so re-running the
// cascade keeps them grouped instead of treating them as resolved.
func cascadeCopies(a, b model.Rect, spacing int) bool {
	if spacing <= 0 {
		return false
	}
	diffs := []int{a.X - b.X, a.Y - b.Y, a.Width - b.Width, a.Height - b.Height}
	for _, d := range diffs {
		if d%spacing != 0 {
			return false
		}
	}
	return true
}

// related reports whether two windows should end up in the same cascade
// group: they overlap, or they are cascade-offset copies.
func related(a, b model.Window, spacing int) bool {
	return a.Frame.Overlaps(b.Frame) || cascadeCopies(a.Frame, b.Frame, spacing)
}

// CascadeGroups partitions windows into groups needing a cascade: the
// transitive closure of the related relation, keeping only groups with at
// least two members. Group order and member order follow window IDs so the
// resulting layout is deterministic.
func CascadeGroups(windows []model.Window, spacing int) [][]model.Window {
	n := len(windows)
	if n < 2 {
		return nil
	}

	sorted := make([]model.Window, n)
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	// Union-find over the window indices.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if related(sorted[i], sorted[j], spacing) {
				parent[find(i)] = find(j)
			}
		}
	}

	byRoot := make(map[int][]model.Window)
	var roots []int
	for i := 0; i < n; i++ {
		root := find(i)
		if _, seen := byRoot[root]; !seen {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], sorted[i])
	}

	var groups [][]model.Window
	sort.Ints(roots)
	for _, root := range roots {
		if g := byRoot[root]; len(g) >= 2 {
			groups = append(groups, g)
		}
	}
	return groups
}

// CascadeLayout computes the diagonal stack for one group: every window is
// placed at the group's bounding-rect origin shifted by spacing × index,
// sized to the bounding rect minus the total stagger so the last window
// still fits inside it. Returned frames parallel the input order.
func CascadeLayout(group []model.Window, spacing int) []model.Rect {
	if len(group) == 0 {
		return nil
	}

	bound := group[0].Frame
	for _, w := range group[1:] {
		r := w.Frame
		right := max(bound.X+bound.Width, r.X+r.Width)
		bottom := max(bound.Y+bound.Height, r.Y+r.Height)
		bound.X = min(bound.X, r.X)
		bound.Y = min(bound.Y, r.Y)
		bound.Width = right - bound.X
		bound.Height = bottom - bound.Y
	}

	stagger := spacing * (len(group) - 1)
	w := bound.Width - stagger
	h := bound.Height - stagger
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	frames := make([]model.Rect, len(group))
	for i := range group {
		frames[i] = model.Rect{
			X:      bound.X + spacing*i,
			Y:      bound.Y + spacing*i,
			Width:  w,
			Height: h,
		}
	}
	return frames
}
