package windowgrid

import (
	"testing"

	"github.com/dbmrq/spoons/internal/model"
)

func win(id int, x, y, w, h int) model.Window {
	return model.Window{ID: model.WindowID(id), Frame: model.Rect{X: x, Y: y, Width: w, Height: h}}
}

func TestCascadeCopies(t *testing.T) {
	base := model.Rect{X: 100, Y: 100, Width: 400, Height: 300}

	tests := []struct {
		name string
		b    model.Rect
		want bool
	}{
		{"identical", base, true},
		{"offset by one spacing", model.Rect{X: 140, Y: 140, Width: 400, Height: 300}, true},
		{"offset by two spacings", model.Rect{X: 180, Y: 180, Width: 400, Height: 300}, true},
		{"offset only x", model.Rect{X: 140, Y: 100, Width: 400, Height: 300}, true},
		{"misaligned offset", model.Rect{X: 123, Y: 140, Width: 400, Height: 300}, false},
		{"different size not multiple", model.Rect{X: 100, Y: 100, Width: 415, Height: 300}, false},
		{"size differs by spacing multiple", model.Rect{X: 100, Y: 100, Width: 360, Height: 260}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cascadeCopies(base, tt.b, 40); got != tt.want {
				t.Errorf("cascadeCopies = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCascadeCopiesZeroSpacing(t *testing.T) {
	r := model.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if cascadeCopies(r, r, 0) {
		t.Error("zero spacing must never match")
	}
}

func TestCascadeGroups(t *testing.T) {
	windows := []model.Window{
		win(1, 0, 0, 500, 500),
		win(2, 250, 250, 500, 500),  // overlaps 1
		win(3, 2000, 0, 300, 300),   // alone
		win(4, 400, 400, 500, 500),  // overlaps 2 (and transitively 1)
	}

	groups := CascadeGroups(windows, 40)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0]) != 3 {
		t.Fatalf("group size = %d, want 3", len(groups[0]))
	}
	for i := 1; i < len(groups[0]); i++ {
		if groups[0][i-1].ID > groups[0][i].ID {
			t.Errorf("group not sorted by window ID: %v", groups[0])
		}
	}
}

func TestCascadeGroupsNoOverlap(t *testing.T) {
	windows := []model.Window{
		win(1, 0, 0, 100, 100),
		win(2, 500, 500, 100, 100),
	}
	if groups := CascadeGroups(windows, 40); groups != nil {
		t.Errorf("expected no groups, got %v", groups)
	}
}

func TestCascadeGroupsSingleWindow(t *testing.T) {
	if groups := CascadeGroups([]model.Window{win(1, 0, 0, 100, 100)}, 40); groups != nil {
		t.Errorf("expected no groups for single window, got %v", groups)
	}
}

func TestCascadeLayout(t *testing.T) {
	const spacing = 40
	group := []model.Window{
		win(1, 0, 0, 500, 500),
		win(2, 100, 100, 500, 500),
		win(3, 200, 50, 400, 450),
	}

	frames := CascadeLayout(group, spacing)
	if len(frames) != 3 {
		t.Fatalf("got %d frames", len(frames))
	}

	// Diagonal stagger of exactly spacing per index.
	for i, f := range frames {
		if f.X != 0+spacing*i || f.Y != 0+spacing*i {
			t.Errorf("frame %d origin (%d,%d), want (%d,%d)", i, f.X, f.Y, spacing*i, spacing*i)
		}
	}

	// Uniform size, and the last window still fits in the bounding rect.
	bound := model.Rect{X: 0, Y: 0, Width: 600, Height: 600}
	last := frames[len(frames)-1]
	if last.X+last.Width > bound.X+bound.Width || last.Y+last.Height > bound.Y+bound.Height {
		t.Errorf("last frame %+v exceeds bounding rect %+v", last, bound)
	}

	// Re-running the cascade on the result recognizes the stack as
	// cascade copies, keeping the group stable.
	relaid := make([]model.Window, len(group))
	for i, w := range group {
		w.Frame = frames[i]
		relaid[i] = w
	}
	groups := CascadeGroups(relaid, spacing)
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Errorf("cascaded stack no longer groups: %v", groups)
	}
}

func TestCascadeLayoutEmpty(t *testing.T) {
	if frames := CascadeLayout(nil, 40); frames != nil {
		t.Errorf("expected nil for empty group, got %v", frames)
	}
}
