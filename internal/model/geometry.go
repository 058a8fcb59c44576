package model

// Rect is a rectangle in absolute screen pixels.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Point is a pixel offset, used for margins and cascade spacing.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps reports whether r and other overlap on both axes.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

// Contains reports whether the point (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Cell is a window's position and size in grid units on one screen.
type Cell struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// Grid divides a screen into Cols × Rows cells separated by Margin pixels.
type Grid struct {
	Cols   int
	Rows   int
	Margin Point
}

// Clamp returns a copy of c constrained to valid grid coordinates:
// position non-negative, size at least one cell, and position+size within
// the grid extent.
func (g Grid) Clamp(c Cell) Cell {
	if c.W < 1 {
		c.W = 1
	}
	if c.H < 1 {
		c.H = 1
	}
	if c.W > g.Cols {
		c.W = g.Cols
	}
	if c.H > g.Rows {
		c.H = g.Rows
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X+c.W > g.Cols {
		c.X = g.Cols - c.W
	}
	if c.Y+c.H > g.Rows {
		c.Y = g.Rows - c.H
	}
	return c
}

// CellFrame converts a grid cell into an absolute pixel rect inside the
// screen's visible frame, applying the configured margin on every edge.
func (g Grid) CellFrame(screen Rect, c Cell) Rect {
	c = g.Clamp(c)
	cellW := float64(screen.Width) / float64(g.Cols)
	cellH := float64(screen.Height) / float64(g.Rows)
	x := screen.X + int(float64(c.X)*cellW) + g.Margin.X
	y := screen.Y + int(float64(c.Y)*cellH) + g.Margin.Y
	w := int(float64(c.W)*cellW) - 2*g.Margin.X
	h := int(float64(c.H)*cellH) - 2*g.Margin.Y
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// CellAt converts a window's pixel frame back into the nearest grid cell on
// the given screen. Frames that don't line up exactly with the grid (margins,
// apps that refuse sizes) round to the closest cell boundary.
func (g Grid) CellAt(screen Rect, frame Rect) Cell {
	cellW := float64(screen.Width) / float64(g.Cols)
	cellH := float64(screen.Height) / float64(g.Rows)
	x := roundDiv(float64(frame.X-screen.X), cellW)
	y := roundDiv(float64(frame.Y-screen.Y), cellH)
	w := roundDiv(float64(frame.Width+2*g.Margin.X), cellW)
	h := roundDiv(float64(frame.Height+2*g.Margin.Y), cellH)
	return g.Clamp(Cell{X: x, Y: y, W: w, H: h})
}

func roundDiv(v, unit float64) int {
	if unit <= 0 {
		return 0
	}
	n := v / unit
	if n < 0 {
		return int(n - 0.5)
	}
	return int(n + 0.5)
}

// Fraction describes a window's position and size as fractions of its
// screen's visible frame, used for cross-screen moves that preserve relative
// placement instead of the grid cell.
type Fraction struct {
	X, Y, W, H float64
}

// FractionOf returns frame's relative placement within screen.
func FractionOf(screen, frame Rect) Fraction {
	if screen.Width == 0 || screen.Height == 0 {
		return Fraction{}
	}
	return Fraction{
		X: float64(frame.X-screen.X) / float64(screen.Width),
		Y: float64(frame.Y-screen.Y) / float64(screen.Height),
		W: float64(frame.Width) / float64(screen.Width),
		H: float64(frame.Height) / float64(screen.Height),
	}
}

// Apply maps the fraction onto a destination screen's visible frame.
func (f Fraction) Apply(screen Rect) Rect {
	return Rect{
		X:      screen.X + int(f.X*float64(screen.Width)),
		Y:      screen.Y + int(f.Y*float64(screen.Height)),
		Width:  int(f.W * float64(screen.Width)),
		Height: int(f.H * float64(screen.Height)),
	}
}
