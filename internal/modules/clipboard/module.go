package clipboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/modules"
	"github.com/dbmrq/spoons/internal/platform"
	"github.com/dbmrq/spoons/internal/sched"
)

const (
	// historyKey is the settings-store key the history persists under.
	historyKey = "clipboard.history"

	// captureDelay is how long after forwarding the copy/cut keystroke the
	// pasteboard is read. The target app needs a beat to service the event.
	captureDelay = 120 * time.Millisecond

	// forwardWindow swallows hotkey triggers caused by our own synthesized
	// keystroke. A real repeat press outside the window is captured again.
	forwardWindow = 200 * time.Millisecond
)

// MenuItem is one entry of the rebuilt menu-bar menu.
type MenuItem struct {
	Title    string
	OnSelect func()
}

// Menu is the menu-bar surface the module publishes into. The systray
// implementation lives in tray.go; tests use a fake.
type Menu interface {
	Rebuild(items []MenuItem)
}

// SettingsStore is the subset of *settings.Store the module uses.
type SettingsStore interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
	Delete(key string) error
}

// Deps are the collaborators the module calls into.
type Deps struct {
	Pasteboard platform.Pasteboard
	Keyboard   platform.Keyboard
	Hotkeys    modules.HotkeyRegistrar
	Settings   SettingsStore
	Menu       Menu
	Sched      *sched.Scheduler
}

// Module is the clipboard-history service.
type Module struct {
	deps Deps
	cfg  config.ClipboardConfig

	mu          sync.Mutex
	history     *History
	lastForward time.Time
}

// New builds the module and loads any persisted history.
func New(cfg config.ClipboardConfig, deps Deps) (*Module, error) {
	if cfg.CopyCapacity < 1 || cfg.CutCapacity < 1 {
		return nil, fmt.Errorf("clipboard bucket capacities must be at least 1")
	}

	m := &Module{
		deps:    deps,
		cfg:     cfg,
		history: NewHistory(cfg.CopyCapacity, cfg.CutCapacity),
	}
	if deps.Settings != nil {
		var s snapshot
		if ok, err := deps.Settings.Get(historyKey, &s); err != nil {
			return nil, err
		} else if ok {
			m.history.restore(s)
		}
	}
	return m, nil
}

func (m *Module) Name() string { return "clipboard" }

// Start registers the copy/cut interception hotkeys and publishes the menu.
func (m *Module) Start() error {
	for _, ic := range []struct {
		combo  string
		label  string
		bucket Bucket
	}{
		{"cmd+c", "Copy to history", BucketCopy},
		{"cmd+x", "Cut to history", BucketCut},
	} {
		combo, err := hotkeys.ParseCombo(ic.combo)
		if err != nil {
			return err
		}
		bucket := ic.bucket
		err = m.deps.Hotkeys.Register(hotkeys.Binding{
			Combo:  combo,
			Label:  ic.label,
			OnDown: func() { m.intercept(bucket) },
		})
		if err != nil {
			m.deps.Hotkeys.UnregisterAll()
			return err
		}
	}
	m.rebuildMenu()
	return nil
}

// Stop releases the hotkeys and cancels pending captures.
func (m *Module) Stop() {
	m.deps.Hotkeys.UnregisterAll()
	m.deps.Sched.StopAll()
}

// intercept forwards the swallowed copy/cut keystroke to the frontmost app
// and schedules a pasteboard read once the app has serviced it.
func (m *Module) intercept(b Bucket) {
	m.mu.Lock()
	if time.Since(m.lastForward) < forwardWindow {
		m.mu.Unlock()
		return
	}
	m.lastForward = time.Now()
	m.mu.Unlock()

	key := "c"
	if b == BucketCut {
		key = "x"
	}
	if err := m.deps.Keyboard.KeyCombo([]string{"cmd", key}); err != nil {
		return
	}
	m.deps.Sched.After(captureDelay, func() { m.capture(b) })
}

// capture reads the pasteboard and records it in the bucket.
func (m *Module) capture(b Bucket) {
	text, err := m.deps.Pasteboard.GetText()
	if err != nil || text == "" {
		return
	}

	m.mu.Lock()
	m.history.Insert(b, text)
	m.mu.Unlock()

	m.persist()
	m.rebuildMenu()
}

// Clear empties both buckets and the persisted copy.
func (m *Module) Clear() {
	m.mu.Lock()
	m.history.Clear()
	m.mu.Unlock()

	if m.deps.Settings != nil {
		_ = m.deps.Settings.Delete(historyKey)
	}
	m.rebuildMenu()
}

// Merged returns the combined history, most recent first.
func (m *Module) Merged() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.Merged()
}

// Write puts text on the pasteboard without recording it.
func (m *Module) Write(text string) error {
	return m.deps.Pasteboard.SetText(text)
}

func (m *Module) persist() {
	if m.deps.Settings == nil {
		return
	}
	m.mu.Lock()
	s := m.history.snapshot()
	m.mu.Unlock()
	_ = m.deps.Settings.Set(historyKey, s)
}

// rebuildMenu republishes the menu: merged history, the user's static
// items, then the clear action. Selecting a history item writes it back to
// the pasteboard.
func (m *Module) rebuildMenu() {
	if m.deps.Menu == nil {
		return
	}

	var items []MenuItem
	for _, text := range m.Merged() {
		text := text
		items = append(items, MenuItem{
			Title:    menuTitle(text, m.cfg.MaxMenuTitleLen),
			OnSelect: func() { _ = m.deps.Pasteboard.SetText(text) },
		})
	}
	for _, static := range m.cfg.StaticItems {
		text := static.Text
		items = append(items, MenuItem{
			Title:    static.Title,
			OnSelect: func() { _ = m.deps.Pasteboard.SetText(text) },
		})
	}
	items = append(items, MenuItem{Title: "Clear History", OnSelect: m.Clear})

	m.deps.Menu.Rebuild(items)
}

// PersistedHistory reads the history another process persisted and returns
// the merged view, most recent first. The CLI and the MCP server use it to
// inspect the daemon's history without owning the module.
func PersistedHistory(store SettingsStore) ([]string, error) {
	var s snapshot
	ok, err := store.Get(historyKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	h := NewHistory(len(s.Copies)+1, len(s.Cuts)+1)
	h.restore(s)
	return h.Merged(), nil
}

// ClearPersisted removes the persisted history.
func ClearPersisted(store SettingsStore) error {
	return store.Delete(historyKey)
}

// menuTitle flattens whitespace and truncates to limit runes.
func menuTitle(text string, limit int) string {
	flat := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' {
			r = ' '
		}
		flat = append(flat, r)
	}
	if limit > 0 && len(flat) > limit {
		return string(flat[:limit]) + "…"
	}
	return string(flat)
}
