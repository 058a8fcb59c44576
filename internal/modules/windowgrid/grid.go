package windowgrid

import "github.com/dbmrq/spoons/internal/model"

// Direction is a cardinal direction for move and resize actions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// horizontal reports whether the direction works on the x axis.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// axis extracts the position/size/extent of the cell along d's axis.
func axis(g model.Grid, c model.Cell, d Direction) (pos, size, extent int) {
	if d.horizontal() {
		return c.X, c.W, g.Cols
	}
	return c.Y, c.H, g.Rows
}

// withAxis writes pos and size back onto the cell along d's axis.
func withAxis(c model.Cell, d Direction, pos, size int) model.Cell {
	if d.horizontal() {
		c.X, c.W = pos, size
	} else {
		c.Y, c.H = pos, size
	}
	return c
}

// flush reports whether the cell's edge in direction d touches the grid
// boundary.
func flush(g model.Grid, c model.Cell, d Direction) bool {
	pos, size, extent := axis(g, c, d)
	switch d {
	case DirLeft, DirUp:
		return pos == 0
	default:
		return pos+size == extent
	}
}

// anchor returns the position that keeps the cell's d-edge flush against
// the grid boundary for the given size.
func anchor(g model.Grid, c model.Cell, d Direction, size int) int {
	_, _, extent := axis(g, c, d)
	switch d {
	case DirLeft, DirUp:
		return 0
	default:
		return extent - size
	}
}

// minSize is the extent at or below which a resize is forced to grow.
const minSize = 2

// ResizeToward implements the directional resize. When the cell is not
// flush against the target edge it snaps there without changing size.
// Otherwise it grows or shrinks along the axis, anchored to that edge:
// growing is forced at size ≤ minSize, shrinking at full extent, and the
// flag carries over between calls in between. Large cells (more than half
// the extent) step by two so reaching either extreme takes fewer presses.
// Returns the new cell, the updated growing flag, and snapped=true when
// only the position changed.
func ResizeToward(g model.Grid, c model.Cell, d Direction, growing bool) (out model.Cell, growingOut bool, snapped bool) {
	c = g.Clamp(c)
	_, size, extent := axis(g, c, d)

	if !flush(g, c, d) {
		c = withAxis(c, d, anchor(g, c, d, size), size)
		return g.Clamp(c), growing, true
	}

	switch {
	case size <= minSize:
		growing = true
	case size >= extent:
		growing = false
	}

	step := 1
	if size > extent/2 {
		step = 2
	}

	newSize := size + step
	if !growing {
		newSize = size - step
	}
	if newSize < 1 {
		newSize = 1
	}
	if newSize > extent {
		newSize = extent
	}

	c = withAxis(c, d, anchor(g, c, d, newSize), newSize)
	return g.Clamp(c), growing, false
}

// moveStep is the default number of grid units a move pushes the window.
const moveStep = 2

// MoveToward pushes the cell two grid steps in the direction (three when
// the cell's extent along that axis is exactly three, keeping thirds
// aligned). A cell already flush against the boundary does not move.
// Returns moved=false for the flush no-op case.
func MoveToward(g model.Grid, c model.Cell, d Direction) (out model.Cell, moved bool) {
	c = g.Clamp(c)
	if flush(g, c, d) {
		return c, false
	}

	pos, size, _ := axis(g, c, d)
	step := moveStep
	if size == 3 {
		step = 3
	}
	if d == DirLeft || d == DirUp {
		step = -step
	}

	c = withAxis(c, d, pos+step, size)
	return g.Clamp(c), true
}

// Maximized returns the cell covering the whole grid.
func Maximized(g model.Grid) model.Cell {
	return model.Cell{X: 0, Y: 0, W: g.Cols, H: g.Rows}
}

// Centered returns the cell with the same size centered on the grid.
func Centered(g model.Grid, c model.Cell) model.Cell {
	c = g.Clamp(c)
	c.X = (g.Cols - c.W) / 2
	c.Y = (g.Rows - c.H) / 2
	return c
}
