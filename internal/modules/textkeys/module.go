// Package textkeys provides emacs-style editing shortcuts everywhere by
// translating them into the equivalent macOS navigation keystrokes.
package textkeys

import (
	"sync"
	"time"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/modules"
	"github.com/dbmrq/spoons/internal/platform"
)

// forwardWindow swallows hotkey triggers caused by forwarding the original
// keystroke when the shortcut is gated off outside text fields.
const forwardWindow = 200 * time.Millisecond

// shortcut maps one intercepted combo to the key sequence that emulates it.
type shortcut struct {
	combo    string
	label    string
	sequence [][]string
}

// shortcuts is the fixed translation table. Sequences use the simulated
// keyboard's combo syntax.
var shortcuts = []shortcut{
	{"ctrl+a", "Start of line", [][]string{{"cmd", "left"}}},
	{"ctrl+e", "End of line", [][]string{{"cmd", "right"}}},
	{"ctrl+f", "Forward one character", [][]string{{"right"}}},
	{"ctrl+b", "Back one character", [][]string{{"left"}}},
	{"ctrl+n", "Next line", [][]string{{"down"}}},
	{"ctrl+p", "Previous line", [][]string{{"up"}}},
	{"ctrl+d", "Delete forward", [][]string{{"forwarddelete"}}},
	{"ctrl+k", "Kill to end of line", [][]string{{"shift", "cmd", "right"}, {"forwarddelete"}}},
	{"alt+f", "Forward one word", [][]string{{"alt", "right"}}},
	{"alt+b", "Back one word", [][]string{{"alt", "left"}}},
	{"alt+d", "Delete word forward", [][]string{{"shift", "alt", "right"}, {"forwarddelete"}}},
}

// Deps are the collaborators the module calls into.
type Deps struct {
	Keyboard platform.Keyboard
	Focus    platform.FocusInfo
	Hotkeys  modules.HotkeyRegistrar
}

// Module is the text-editing shortcut service.
type Module struct {
	deps Deps
	cfg  config.TextKeysConfig

	mu          sync.Mutex
	lastForward time.Time
}

// New builds the module.
func New(cfg config.TextKeysConfig, deps Deps) (*Module, error) {
	return &Module{deps: deps, cfg: cfg}, nil
}

func (m *Module) Name() string { return "textkeys" }

// Start registers every shortcut in the table.
func (m *Module) Start() error {
	for _, sc := range shortcuts {
		combo, err := hotkeys.ParseCombo(sc.combo)
		if err != nil {
			return err
		}
		sc := sc
		err = m.deps.Hotkeys.Register(hotkeys.Binding{
			Combo:  combo,
			Label:  sc.label,
			OnDown: func() { m.fire(sc) },
		})
		if err != nil {
			m.deps.Hotkeys.UnregisterAll()
			return err
		}
	}
	return nil
}

// Stop releases the shortcuts.
func (m *Module) Stop() {
	m.deps.Hotkeys.UnregisterAll()
}

// fire runs the translated sequence, or forwards the original keystroke
// when the shortcuts are gated to text fields and none has focus.
func (m *Module) fire(sc shortcut) {
	if m.cfg.OnlyInTextFields && !isTextRole(m.deps.Focus.FocusedRole()) {
		m.forwardOriginal(sc)
		return
	}
	for _, keys := range sc.sequence {
		if err := m.deps.Keyboard.KeyCombo(keys); err != nil {
			return
		}
	}
}

// forwardOriginal re-emits the intercepted combo so the frontmost app sees
// the keystroke it would have received without us.
func (m *Module) forwardOriginal(sc shortcut) {
	m.mu.Lock()
	if time.Since(m.lastForward) < forwardWindow {
		m.mu.Unlock()
		return
	}
	m.lastForward = time.Now()
	m.mu.Unlock()

	combo, err := hotkeys.ParseCombo(sc.combo)
	if err != nil {
		return
	}
	_ = m.deps.Keyboard.KeyCombo(append(append([]string{}, combo.Mods...), combo.Key))
}

func isTextRole(role string) bool {
	switch role {
	case "AXTextField", "AXTextArea", "AXSearchField", "AXComboBox":
		return true
	}
	return false
}
