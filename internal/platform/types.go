package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dbmrq/spoons/internal/model"
)

// ListOptions controls window listing.
type ListOptions struct {
	App      string // Filter by application name
	PID      int    // Filter by process ID (0 = unset)
	ScreenID int    // Filter to windows on this screen (0 = all; see Screens)
}

// ParseGridSize parses a "WxH" string like "6x6" into grid dimensions.
func ParseGridSize(s string) (cols, rows int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid size %q: expected WxH", s)
	}
	cols, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid size %q: %w", s, err)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid size %q: %w", s, err)
	}
	if cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("invalid grid size %q: dimensions must be positive", s)
	}
	return cols, rows, nil
}

// ParseMargin parses an "X,Y" string like "5,5" into a pixel margin.
func ParseMargin(s string) (model.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return model.Point{}, fmt.Errorf("invalid margin %q: expected X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid margin %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid margin %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return model.Point{}, fmt.Errorf("invalid margin %q: values must be non-negative", s)
	}
	return model.Point{X: x, Y: y}, nil
}
