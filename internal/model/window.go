package model

// WindowID identifies a window across platform calls. On macOS it is the
// CGWindowID, which stays stable for the lifetime of the window.
type WindowID int

// Window represents an application window.
type Window struct {
	ID      WindowID `yaml:"id"                json:"id"`
	App     string   `yaml:"app"               json:"app"`
	PID     int      `yaml:"pid"               json:"pid"`
	Title   string   `yaml:"title"             json:"title"`
	Frame   Rect     `yaml:"frame"             json:"frame"`
	Focused bool     `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// Screen represents a physical display and its usable area.
type Screen struct {
	ID    int    `yaml:"id"    json:"id"`
	Name  string `yaml:"name"  json:"name"`
	Frame Rect   `yaml:"frame" json:"frame"` // visible frame, menu bar and dock excluded
}

// ScreenOf picks the screen containing the frame's center, falling back to
// the screen whose frame overlaps it at all. Returns ok=false when the frame
// is entirely off-screen or no screens exist.
func ScreenOf(screens []Screen, frame Rect) (Screen, bool) {
	cx, cy := frame.Center()
	for _, s := range screens {
		if s.Frame.Contains(cx, cy) {
			return s, true
		}
	}
	for _, s := range screens {
		if s.Frame.Overlaps(frame) {
			return s, true
		}
	}
	return Screen{}, false
}
