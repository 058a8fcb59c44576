// Package windowgrid moves and resizes the focused window on a fixed grid,
// cascades overlapping windows, and keeps a per-window undo history.
package windowgrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/model"
	"github.com/dbmrq/spoons/internal/modules"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
)

// Action is a grid operation bindable to a hotkey.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionResizeLeft
	ActionResizeRight
	ActionResizeUp
	ActionResizeDown
	ActionSnap
	ActionMaximize
	ActionCenter
	ActionCascade
	ActionUndo
	ActionRedo
	ActionScreenNext
	ActionScreenPrev
)

var actionNames = map[Action]string{
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionMoveUp:      "move-up",
	ActionMoveDown:    "move-down",
	ActionResizeLeft:  "resize-left",
	ActionResizeRight: "resize-right",
	ActionResizeUp:    "resize-up",
	ActionResizeDown:  "resize-down",
	ActionSnap:        "snap",
	ActionMaximize:    "maximize",
	ActionCenter:      "center",
	ActionCascade:     "cascade",
	ActionUndo:        "undo",
	ActionRedo:        "redo",
	ActionScreenNext:  "screen-next",
	ActionScreenPrev:  "screen-prev",
}

var actionLabels = map[Action]string{
	ActionMoveLeft:    "Move left",
	ActionMoveRight:   "Move right",
	ActionMoveUp:      "Move up",
	ActionMoveDown:    "Move down",
	ActionResizeLeft:  "Resize left",
	ActionResizeRight: "Resize right",
	ActionResizeUp:    "Resize up",
	ActionResizeDown:  "Resize down",
	ActionSnap:        "Snap to grid",
	ActionMaximize:    "Maximize",
	ActionCenter:      "Center",
	ActionCascade:     "Cascade windows",
	ActionUndo:        "Undo frame change",
	ActionRedo:        "Redo frame change",
	ActionScreenNext:  "Move to next screen",
	ActionScreenPrev:  "Move to previous screen",
}

func (a Action) String() string { return actionNames[a] }

// Label returns the human-readable description shown in the hint overlay.
func (a Action) Label() string { return actionLabels[a] }

// ParseAction maps a config action name to its Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown grid action: %q", name)
}

// ParseScreenIndex recognizes "screen-N" action names from the CLI and
// MCP surfaces, returning the 1-based screen number.
func ParseScreenIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(name)), "screen-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// defaultKeys is the built-in binding table, overridden per-action by the
// config's bindings map.
var defaultKeys = map[Action]string{
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionMoveUp:      "up",
	ActionMoveDown:    "down",
	ActionResizeLeft:  "h",
	ActionResizeRight: "l",
	ActionResizeUp:    "k",
	ActionResizeDown:  "j",
	ActionSnap:        "s",
	ActionMaximize:    "m",
	ActionCenter:      "c",
	ActionCascade:     "space",
	ActionUndo:        "z",
	ActionRedo:        "y",
	ActionScreenNext:  "n",
	ActionScreenPrev:  "p",
}

// Deps are the collaborators the module calls into. Tests substitute fakes.
type Deps struct {
	Windows platform.WindowManager
	Screens platform.Screens
	Hotkeys modules.HotkeyRegistrar
	Sched   *sched.Scheduler

	// OnModeLabel, when set, receives a short caption after each handled
	// action; the hint overlay displays it briefly.
	OnModeLabel func(label string)
}

// Module is the window-grid service.
type Module struct {
	deps Deps
	cfg  config.GridConfig

	grid     model.Grid
	bindings map[Action]hotkeys.Combo
	history  *History

	// Per-axis grow/shrink state for directional resizes.
	growingX bool
	growingY bool
}

// New validates the configuration and builds the module.
func New(cfg config.GridConfig, deps Deps) (*Module, error) {
	cols, rows, err := platform.ParseGridSize(cfg.Size)
	if err != nil {
		return nil, err
	}
	margin, err := platform.ParseMargin(cfg.Margin)
	if err != nil {
		return nil, err
	}

	mods := hotkeys.NormalizeMods(cfg.Modifiers)
	if len(mods) == 0 {
		return nil, fmt.Errorf("grid module needs at least one modifier")
	}

	bindings := make(map[Action]hotkeys.Combo, len(defaultKeys))
	for action, key := range defaultKeys {
		if override, ok := cfg.Bindings[action.String()]; ok {
			key = override
		}
		combo, err := hotkeys.ParseCombo(strings.Join(append(append([]string{}, mods...), key), "+"))
		if err != nil {
			return nil, fmt.Errorf("binding for %s: %w", action, err)
		}
		bindings[action] = combo
	}
	for name := range cfg.Bindings {
		if _, err := ParseAction(name); err != nil {
			return nil, err
		}
	}

	return &Module{
		deps:     deps,
		cfg:      cfg,
		grid:     model.Grid{Cols: cols, Rows: rows, Margin: margin},
		bindings: bindings,
		history:  NewHistory(cfg.HistoryDepth),
	}, nil
}

func (m *Module) Name() string { return "windowgrid" }

// Grid returns the configured grid.
func (m *Module) Grid() model.Grid { return m.grid }

// Start registers all grid hotkeys.
func (m *Module) Start() error {
	for action, combo := range m.bindings {
		action := action
		err := m.deps.Hotkeys.Register(hotkeys.Binding{
			Combo:  combo,
			Label:  action.Label(),
			OnDown: func() { m.Handle(action) },
		})
		if err != nil {
			m.deps.Hotkeys.UnregisterAll()
			return err
		}
	}
	return nil
}

// Stop releases hotkeys and cancels deferred cascade passes.
func (m *Module) Stop() {
	m.deps.Hotkeys.UnregisterAll()
	m.deps.Sched.StopAll()
}

// Handle dispatches one grid action. Every handler is a silent no-op when
// no window is focused or no screen resolves.
func (m *Module) Handle(a Action) {
	switch a {
	case ActionMoveLeft:
		m.move(DirLeft)
	case ActionMoveRight:
		m.move(DirRight)
	case ActionMoveUp:
		m.move(DirUp)
	case ActionMoveDown:
		m.move(DirDown)
	case ActionResizeLeft:
		m.resize(DirLeft)
	case ActionResizeRight:
		m.resize(DirRight)
	case ActionResizeUp:
		m.resize(DirUp)
	case ActionResizeDown:
		m.resize(DirDown)
	case ActionSnap:
		m.applyCell(func(c model.Cell) model.Cell { return c })
	case ActionMaximize:
		m.applyCell(func(c model.Cell) model.Cell { return Maximized(m.grid) })
	case ActionCenter:
		m.applyCell(func(c model.Cell) model.Cell { return Centered(m.grid, c) })
	case ActionCascade:
		m.cascadeFocusedScreen()
	case ActionUndo:
		m.undo()
	case ActionRedo:
		m.redo()
	case ActionScreenNext:
		m.moveScreen(1)
	case ActionScreenPrev:
		m.moveScreen(-1)
	}
	m.notify(a.Label())
}

func (m *Module) notify(label string) {
	if m.deps.OnModeLabel != nil {
		m.deps.OnModeLabel(label)
	}
}

// focused resolves the focused window, its screen, and its grid cell.
func (m *Module) focused() (model.Window, model.Screen, model.Cell, bool) {
	win, ok := m.deps.Windows.FocusedWindow()
	if !ok {
		return model.Window{}, model.Screen{}, model.Cell{}, false
	}
	screen, ok := m.deps.Screens.ScreenOf(win.Frame)
	if !ok {
		return model.Window{}, model.Screen{}, model.Cell{}, false
	}
	frame, ok := m.deps.Windows.Frame(win.ID)
	if !ok {
		return model.Window{}, model.Screen{}, model.Cell{}, false
	}
	win.Frame = frame
	return win, screen, m.grid.CellAt(screen.Frame, frame), true
}

// setFrame records the old frame then applies the new one.
func (m *Module) setFrame(win model.Window, frame model.Rect) {
	m.history.Record(win.ID, win.Frame)
	_ = m.deps.Windows.SetFrame(win.ID, frame) // best effort, per module semantics
}

func (m *Module) move(d Direction) {
	win, screen, cell, ok := m.focused()
	if !ok {
		return
	}
	next, moved := MoveToward(m.grid, cell, d)
	if !moved {
		return
	}
	m.setFrame(win, m.grid.CellFrame(screen.Frame, next))
	m.cascadeScreen(screen)
}

func (m *Module) resize(d Direction) {
	win, screen, cell, ok := m.focused()
	if !ok {
		return
	}

	growing := m.growingX
	if !d.horizontal() {
		growing = m.growingY
	}

	next, growing, snapped := ResizeToward(m.grid, cell, d, growing)

	if d.horizontal() {
		m.growingX = growing
	} else {
		m.growingY = growing
	}

	m.setFrame(win, m.grid.CellFrame(screen.Frame, next))
	if !snapped {
		m.cascadeScreen(screen)
	}
}

func (m *Module) applyCell(f func(model.Cell) model.Cell) {
	win, screen, cell, ok := m.focused()
	if !ok {
		return
	}
	m.setFrame(win, m.grid.CellFrame(screen.Frame, f(cell)))
}

func (m *Module) undo() {
	win, _, _, ok := m.focused()
	if !ok {
		return
	}
	if frame, ok := m.history.Undo(win.ID, win.Frame); ok {
		_ = m.deps.Windows.SetFrame(win.ID, frame)
	}
}

func (m *Module) redo() {
	win, _, _, ok := m.focused()
	if !ok {
		return
	}
	if frame, ok := m.history.Redo(win.ID, win.Frame); ok {
		_ = m.deps.Windows.SetFrame(win.ID, frame)
	}
}

func (m *Module) cascadeFocusedScreen() {
	_, screen, _, ok := m.focused()
	if !ok {
		return
	}
	m.cascadeScreen(screen)
}

// cascadeScreen resolves overlap groups on the screen and lays each out as
// a diagonal stack. When a slow-resizing app is involved a second pass runs
// after a delay, because the first SetFrame may have been applied to a
// frame the app was still animating.
func (m *Module) cascadeScreen(screen model.Screen) {
	windows, err := m.deps.Windows.ListWindows(platform.ListOptions{ScreenID: screen.ID})
	if err != nil {
		return
	}

	changed := false
	groups := CascadeGroups(windows, m.cfg.CascadeSpacing)
	for _, group := range groups {
		frames := CascadeLayout(group, m.cfg.CascadeSpacing)
		for i, w := range group {
			if w.Frame != frames[i] {
				m.setFrame(w, frames[i])
				changed = true
			}
		}
	}

	if changed && m.hasSlowResizeApp(windows) {
		delay := time.Duration(m.cfg.CascadeRecheckMs) * time.Millisecond
		m.deps.Sched.After(delay, func() { m.cascadeScreen(screen) })
	}
}

func (m *Module) hasSlowResizeApp(windows []model.Window) bool {
	for _, w := range windows {
		for _, app := range m.cfg.SlowResizeApps {
			if strings.EqualFold(w.App, app) {
				return true
			}
		}
	}
	return false
}

// moveScreen sends the focused window delta screens forward or back,
// wrapping around. The window keeps its grid cell or its fractional
// placement depending on configuration.
func (m *Module) moveScreen(delta int) {
	win, screen, cell, ok := m.focused()
	if !ok {
		return
	}
	screens, err := m.deps.Screens.ListScreens()
	if err != nil || len(screens) < 2 {
		return
	}

	cur := -1
	for i, s := range screens {
		if s.ID == screen.ID {
			cur = i
			break
		}
	}
	if cur < 0 {
		return
	}
	dest := screens[((cur+delta)%len(screens)+len(screens))%len(screens)]
	m.placeOnScreen(win, screen, cell, dest)
}

// MoveToScreen places the focused window on screen n, 1-based in
// enumeration order (main screen first). Out-of-range indexes no-op.
func (m *Module) MoveToScreen(n int) {
	win, screen, cell, ok := m.focused()
	if !ok {
		return
	}
	screens, err := m.deps.Screens.ListScreens()
	if err != nil || n < 1 || n > len(screens) {
		return
	}
	m.placeOnScreen(win, screen, cell, screens[n-1])
}

func (m *Module) placeOnScreen(win model.Window, from model.Screen, cell model.Cell, dest model.Screen) {
	var frame model.Rect
	if m.cfg.PreserveCellAcrossScreens {
		frame = m.grid.CellFrame(dest.Frame, cell)
	} else {
		frame = model.FractionOf(from.Frame, win.Frame).Apply(dest.Frame)
	}
	m.setFrame(win, frame)
}
