// Package config loads the user configuration file. Each module reads its
// own section; missing fields keep their defaults, so a minimal file only
// overrides what the user cares about.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Hints     HintsConfig     `yaml:"hints"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	TextKeys  TextKeysConfig  `yaml:"textkeys"`
	QuitGuard QuitGuardConfig `yaml:"quitguard"`
}

// GridConfig configures the window-grid module.
type GridConfig struct {
	Enabled bool   `yaml:"enabled"`
	Size    string `yaml:"size"`   // "WxH", e.g. "6x6"
	Margin  string `yaml:"margin"` // "X,Y" pixels between cells

	// Modifiers held for every grid binding, e.g. [ctrl, alt, cmd].
	Modifiers []string `yaml:"modifiers"`

	// Bindings maps action names to keys, merged over the default table.
	// Valid actions: move-left, move-right, move-up, move-down,
	// resize-left, resize-right, resize-up, resize-down, maximize,
	// center, cascade, undo, redo, screen-next, screen-prev.
	Bindings map[string]string `yaml:"bindings"`

	// CascadeSpacing is the diagonal offset in pixels between cascaded
	// windows.
	CascadeSpacing int `yaml:"cascadeSpacing"`

	// SlowResizeApps lists application names that resize asynchronously;
	// cascade runs a deferred second pass when any is present.
	SlowResizeApps []string `yaml:"slowResizeApps"`

	// CascadeRecheckMs is the delay before that second pass.
	CascadeRecheckMs int `yaml:"cascadeRecheckMs"`

	// PreserveCellAcrossScreens re-applies the grid cell on the target
	// screen when moving between screens; when false the window keeps its
	// relative fractional position instead.
	PreserveCellAcrossScreens bool `yaml:"preserveCellAcrossScreens"`

	// HistoryDepth caps the per-window undo history.
	HistoryDepth int `yaml:"historyDepth"`
}

// HintsConfig configures the hotkey-hint overlay.
type HintsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Modifiers whose hold triggers the overlay.
	Modifiers []string `yaml:"modifiers"`

	// DelayMs is the debounce before the overlay shows.
	DelayMs int `yaml:"delayMs"`

	// Priority lists label prefixes shown first; remaining hints sort
	// alphabetically.
	Priority []string `yaml:"priority"`

	FontSize int `yaml:"fontSize"`
}

// StaticMenuItem is a user-supplied entry appended to the clipboard menu.
type StaticMenuItem struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// ClipboardConfig configures the clipboard history module.
type ClipboardConfig struct {
	Enabled bool `yaml:"enabled"`

	// CopyCapacity and CutCapacity bound the two history buckets.
	CopyCapacity int `yaml:"copyCapacity"`
	CutCapacity  int `yaml:"cutCapacity"`

	// MaxMenuTitleLen truncates menu item titles to this many runes.
	MaxMenuTitleLen int `yaml:"maxMenuTitleLen"`

	// StaticItems are appended below the history in the menu.
	StaticItems []StaticMenuItem `yaml:"staticItems"`
}

// TextKeysConfig configures the emacs-style shortcut set.
type TextKeysConfig struct {
	Enabled bool `yaml:"enabled"`

	// OnlyInTextFields gates the shortcuts on an accessibility text role
	// having focus.
	OnlyInTextFields bool `yaml:"onlyInTextFields"`
}

// QuitGuardConfig configures the hold-to-quit timer.
type QuitGuardConfig struct {
	Enabled bool `yaml:"enabled"`

	// Combo is the intercepted quit combination.
	Combo string `yaml:"combo"`

	// HoldSeconds is how long the combo must be held before the frontmost
	// app is terminated.
	HoldSeconds int `yaml:"holdSeconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Enabled:                   true,
			Size:                      "6x6",
			Margin:                    "0,0",
			Modifiers:                 []string{"ctrl", "alt", "cmd"},
			CascadeSpacing:            40,
			CascadeRecheckMs:          500,
			PreserveCellAcrossScreens: true,
			HistoryDepth:              50,
		},
		Hints: HintsConfig{
			Enabled:   true,
			Modifiers: []string{"ctrl", "alt", "cmd"},
			DelayMs:   750,
			FontSize:  13,
		},
		Clipboard: ClipboardConfig{
			Enabled:         true,
			CopyCapacity:    50,
			CutCapacity:     20,
			MaxMenuTitleLen: 40,
		},
		TextKeys: TextKeysConfig{
			Enabled:          false,
			OnlyInTextFields: true,
		},
		QuitGuard: QuitGuardConfig{
			Enabled:     false,
			Combo:       "cmd+q",
			HoldSeconds: 2,
		},
	}
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "spoons")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	return dir, nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error; a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
