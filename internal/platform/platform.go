package platform

import "github.com/dbmrq/spoons/internal/model"

// WindowManager enumerates and manipulates application windows.
type WindowManager interface {
	// FocusedWindow returns the frontmost window, or ok=false when no
	// window has focus (e.g. only the desktop is active).
	FocusedWindow() (model.Window, bool)

	// ListWindows returns all ordinary (layer-0) windows, optionally
	// filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// Frame returns the current frame of the window, or ok=false when the
	// window no longer exists.
	Frame(id model.WindowID) (model.Rect, bool)

	// SetFrame moves and resizes the window.
	SetFrame(id model.WindowID, frame model.Rect) error

	// Raise brings the window to the front of its application.
	Raise(id model.WindowID) error
}

// Screens resolves displays and their usable frames.
type Screens interface {
	// ListScreens returns all displays, main screen first.
	ListScreens() ([]model.Screen, error)

	// ScreenOf returns the screen containing the larger part of the frame,
	// or ok=false when no screen matches.
	ScreenOf(frame model.Rect) (model.Screen, bool)
}

// Pasteboard reads and writes the system pasteboard.
type Pasteboard interface {
	GetText() (string, error)
	SetText(text string) error
	Clear() error
}

// Keyboard simulates keyboard input.
type Keyboard interface {
	// KeyCombo presses a combination like ["cmd", "c"] or ["alt", "right"].
	KeyCombo(keys []string) error
	// TypeText types literal text with an optional inter-key delay.
	TypeText(text string, delayMs int) error
}

// FocusInfo answers accessibility queries about the focused UI element.
type FocusInfo interface {
	// FocusedRole returns the accessibility role of the focused element
	// (e.g. "AXTextField", "AXTextArea"), or "" when nothing has focus.
	FocusedRole() string
}

// AppControl inspects and controls applications.
type AppControl interface {
	// FrontmostApp returns the name and pid of the frontmost application.
	FrontmostApp() (string, int, error)
	// Terminate force-quits the application with the given pid.
	Terminate(pid int) error
}

// ModifierTap watches global modifier-flag changes. The callback receives
// the currently held modifier names (normalized: "cmd", "ctrl", "alt",
// "shift", "fn") on every change, including release to an empty set.
type ModifierTap interface {
	// Start installs the tap. The callback runs on the tap's own goroutine.
	Start(onChange func(mods []string)) error
	// Stop removes the tap. Idempotent.
	Stop()
}

// OverlaySurface displays a pre-rendered RGBA image as a borderless panel
// above all windows. Show replaces any image currently displayed.
type OverlaySurface interface {
	Show(img ImageRGBA, x, y int) error
	Hide()
}

// ImageRGBA is the pixel payload handed to an overlay surface.
type ImageRGBA struct {
	Width  int
	Height int
	Pix    []byte // RGBA, 4 bytes per pixel, row-major
}
