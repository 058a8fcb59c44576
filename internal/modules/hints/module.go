// Package hints shows an overlay listing the hotkeys available under the
// currently held modifiers. The overlay appears after a debounce delay while
// the configured modifier set is held and disappears on release. When a text
// field has focus a fixed text-editing cheat sheet is shown instead.
package hints

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
)

// modeLabelDuration is how long a pushed mode label stays visible.
const modeLabelDuration = 900 * time.Millisecond

// Registry enumerates live hotkey bindings. *hotkeys.Registry implements it.
type Registry interface {
	MatchingModifiers(mods []string) []hotkeys.Binding
}

// Deps are the collaborators the module calls into.
type Deps struct {
	Registry Registry
	Overlay  platform.OverlaySurface
	Tap      platform.ModifierTap
	Focus    platform.FocusInfo
	Screens  platform.Screens
	Sched    *sched.Scheduler
}

// Module is the hint-overlay service.
type Module struct {
	deps Deps
	cfg  config.HintsConfig
	mods []string

	mu        sync.Mutex
	pending   *sched.Task
	labelTask *sched.Task
	visible   bool
}

// New validates the configuration and builds the module.
func New(cfg config.HintsConfig, deps Deps) (*Module, error) {
	mods := hotkeys.NormalizeMods(cfg.Modifiers)
	if len(mods) == 0 {
		return nil, fmt.Errorf("hints module needs at least one modifier")
	}
	if cfg.DelayMs < 0 {
		return nil, fmt.Errorf("hints delay must not be negative")
	}
	return &Module{deps: deps, cfg: cfg, mods: mods}, nil
}

func (m *Module) Name() string { return "hints" }

// Start installs the modifier tap.
func (m *Module) Start() error {
	return m.deps.Tap.Start(m.onModifiers)
}

// Stop removes the tap, cancels pending timers, and hides the overlay.
func (m *Module) Stop() {
	m.deps.Tap.Stop()
	m.deps.Sched.StopAll()
	m.mu.Lock()
	m.pending = nil
	m.labelTask = nil
	m.visible = false
	m.mu.Unlock()
	m.deps.Overlay.Hide()
}

// onModifiers runs on every modifier-flag change.
func (m *Module) onModifiers(held []string) {
	if m.holdMatches(held) {
		m.scheduleShow()
	} else {
		m.hide()
	}
}

func (m *Module) holdMatches(held []string) bool {
	held = hotkeys.NormalizeMods(held)
	if len(held) != len(m.mods) {
		return false
	}
	for i := range held {
		if held[i] != m.mods[i] {
			return false
		}
	}
	return true
}

func (m *Module) scheduleShow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.visible || m.pending != nil {
		return
	}
	delay := time.Duration(m.cfg.DelayMs) * time.Millisecond
	m.pending = m.deps.Sched.After(delay, m.show)
}

func (m *Module) hide() {
	m.mu.Lock()
	m.pending.Cancel()
	m.pending = nil
	wasVisible := m.visible
	m.visible = false
	m.mu.Unlock()
	if wasVisible {
		m.deps.Overlay.Hide()
	}
}

func (m *Module) show() {
	lines := m.hintLines()
	if len(lines) == 0 {
		return
	}

	m.mu.Lock()
	m.pending = nil
	m.visible = true
	m.mu.Unlock()

	img := renderPanel(lines, m.cfg.FontSize)
	x, y := m.centerOnMainScreen(img)
	_ = m.deps.Overlay.Show(img, x, y)
}

// hintLines builds what the overlay displays: the text-editing cheat sheet
// when a text element has focus, otherwise the live bindings for the held
// modifier set.
func (m *Module) hintLines() []string {
	if isTextRole(m.deps.Focus.FocusedRole()) {
		return cheatSheet()
	}

	bindings := m.deps.Registry.MatchingModifiers(m.mods)
	m.sortByPriority(bindings)

	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-12s %s", b.Combo.Key, b.Label))
	}
	return lines
}

// sortByPriority brings bindings whose label starts with a configured
// priority prefix to the front, in prefix order. The rest keep their
// alphabetical order.
func (m *Module) sortByPriority(bindings []hotkeys.Binding) {
	if len(m.cfg.Priority) == 0 {
		return
	}
	rank := func(label string) int {
		for i, prefix := range m.cfg.Priority {
			if strings.HasPrefix(label, prefix) {
				return i
			}
		}
		return len(m.cfg.Priority)
	}
	sort.SliceStable(bindings, func(i, j int) bool {
		return rank(bindings[i].Label) < rank(bindings[j].Label)
	})
}

func (m *Module) centerOnMainScreen(img platform.ImageRGBA) (int, int) {
	screens, err := m.deps.Screens.ListScreens()
	if err != nil || len(screens) == 0 {
		return 0, 0
	}
	f := screens[0].Frame
	return f.X + (f.Width-img.Width)/2, f.Y + (f.Height-img.Height)/2
}

// ShowModeLabel briefly displays a caption at the top of the main screen.
// The window-grid module pushes its action labels here.
func (m *Module) ShowModeLabel(label string) {
	if label == "" {
		return
	}
	img := renderPanel([]string{label}, m.cfg.FontSize)

	screens, err := m.deps.Screens.ListScreens()
	if err != nil || len(screens) == 0 {
		return
	}
	f := screens[0].Frame
	x := f.X + (f.Width-img.Width)/2
	y := f.Y + f.Height/8

	m.mu.Lock()
	m.labelTask.Cancel()
	m.labelTask = m.deps.Sched.After(modeLabelDuration, func() {
		m.mu.Lock()
		m.labelTask = nil
		visible := m.visible
		m.mu.Unlock()
		if !visible {
			m.deps.Overlay.Hide()
		}
	})
	m.mu.Unlock()

	_ = m.deps.Overlay.Show(img, x, y)
}

func isTextRole(role string) bool {
	switch role {
	case "AXTextField", "AXTextArea", "AXSearchField", "AXComboBox":
		return true
	}
	return false
}

// cheatSheet lists the emacs-style editing shortcuts the textkeys module
// provides. Shown instead of hotkey hints when a text element has focus.
func cheatSheet() []string {
	return []string{
		"ctrl+a       Start of line",
		"ctrl+e       End of line",
		"ctrl+f       Forward one character",
		"ctrl+b       Back one character",
		"ctrl+n       Next line",
		"ctrl+p       Previous line",
		"ctrl+d       Delete forward",
		"ctrl+k       Kill to end of line",
		"alt+f        Forward one word",
		"alt+b        Back one word",
		"alt+d        Delete word forward",
	}
}
