package model

import "testing"

func TestGridClamp(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}

	tests := []struct {
		name string
		in   Cell
		want Cell
	}{
		{"already valid", Cell{X: 1, Y: 2, W: 3, H: 2}, Cell{X: 1, Y: 2, W: 3, H: 2}},
		{"negative position", Cell{X: -2, Y: -1, W: 2, H: 2}, Cell{X: 0, Y: 0, W: 2, H: 2}},
		{"zero size", Cell{X: 0, Y: 0, W: 0, H: 0}, Cell{X: 0, Y: 0, W: 1, H: 1}},
		{"oversized", Cell{X: 0, Y: 0, W: 9, H: 9}, Cell{X: 0, Y: 0, W: 6, H: 6}},
		{"overhangs right edge", Cell{X: 5, Y: 0, W: 3, H: 2}, Cell{X: 3, Y: 0, W: 3, H: 2}},
		{"overhangs bottom edge", Cell{X: 0, Y: 5, W: 2, H: 4}, Cell{X: 0, Y: 2, W: 2, H: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Clamp(tt.in)
			if got != tt.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGridClampInvariant(t *testing.T) {
	g := Grid{Cols: 6, Rows: 4}
	for x := -3; x <= 8; x++ {
		for w := -1; w <= 8; w++ {
			c := g.Clamp(Cell{X: x, Y: 0, W: w, H: 1})
			if c.X < 0 || c.W < 1 || c.X+c.W > g.Cols {
				t.Fatalf("Clamp produced invalid cell %+v for x=%d w=%d", c, x, w)
			}
		}
	}
}

func TestCellFrameRoundTrip(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	screen := Rect{X: 0, Y: 25, Width: 1440, Height: 875}

	cells := []Cell{
		{X: 0, Y: 0, W: 2, H: 6},
		{X: 4, Y: 0, W: 2, H: 6},
		{X: 1, Y: 1, W: 3, H: 3},
		{X: 0, Y: 0, W: 6, H: 6},
	}

	for _, c := range cells {
		frame := g.CellFrame(screen, c)
		got := g.CellAt(screen, frame)
		if got != c {
			t.Errorf("round trip for %+v: frame %+v mapped back to %+v", c, frame, got)
		}
	}
}

func TestCellFrameRoundTripWithMargin(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4, Margin: Point{X: 5, Y: 5}}
	screen := Rect{X: 1440, Y: 0, Width: 1920, Height: 1080}

	c := Cell{X: 2, Y: 0, W: 2, H: 4}
	frame := g.CellFrame(screen, c)
	if frame.X <= screen.X+screen.Width/2 {
		t.Errorf("expected frame to start past the screen midpoint, got %+v", frame)
	}
	if got := g.CellAt(screen, frame); got != c {
		t.Errorf("round trip with margin: got %+v, want %+v", got, c)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 100, 100}, Rect{0, 0, 100, 100}, true},
		{"partial overlap", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, true},
		{"touching edges only", Rect{0, 0, 100, 100}, Rect{100, 0, 100, 100}, false},
		{"disjoint", Rect{0, 0, 50, 50}, Rect{200, 200, 50, 50}, false},
		{"overlap x only", Rect{0, 0, 100, 50}, Rect{50, 100, 100, 50}, false},
		{"overlap y only", Rect{0, 0, 50, 100}, Rect{100, 50, 50, 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFractionRoundTrip(t *testing.T) {
	src := Rect{X: 0, Y: 25, Width: 1440, Height: 875}
	dst := Rect{X: 1440, Y: 0, Width: 2560, Height: 1415}

	frame := Rect{X: 360, Y: 25, Width: 720, Height: 875}
	f := FractionOf(src, frame)
	moved := f.Apply(dst)

	if moved.X < dst.X || moved.X+moved.Width > dst.X+dst.Width {
		t.Errorf("moved frame %+v escapes destination screen %+v", moved, dst)
	}
	// A window covering the right half keeps covering roughly the right half.
	if f.W < 0.49 || f.W > 0.51 {
		t.Errorf("unexpected width fraction %v", f.W)
	}
	if moved.Width < dst.Width/2-2 || moved.Width > dst.Width/2+2 {
		t.Errorf("moved width %d not about half of %d", moved.Width, dst.Width)
	}
}

func TestFractionOfDegenerateScreen(t *testing.T) {
	f := FractionOf(Rect{}, Rect{X: 10, Y: 10, Width: 100, Height: 100})
	if f != (Fraction{}) {
		t.Errorf("expected zero fraction for zero-size screen, got %+v", f)
	}
}
