// Package quitguard intercepts the quit combo and only terminates the
// frontmost application after the combo has been held for a configured
// duration. A visible countdown ticks while the key is down; releasing it
// cancels and resets.
package quitguard

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

// tickInterval is the countdown resolution.
const tickInterval = time.Second

// Deps are the collaborators the module calls into.
type Deps struct {
	Apps    platform.AppControl
	Hotkeys modules.HotkeyRegistrar
	Sched   *sched.Scheduler

	// OnCountdown, when set, receives the remaining seconds on every tick
	// and the hold duration when the countdown starts. The hint overlay
	// displays it as a mode label.
	OnCountdown func(remaining int)
}

// Module is the hold-to-quit service.
type Module struct {
	deps  Deps
	combo hotkeys.Combo
	hold  int

	mu        sync.Mutex
	remaining int
	ticker    *sched.Task
}

// New validates the configuration and builds the module.
func New(cfg config.QuitGuardConfig, deps Deps) (*Module, error) {
	combo, err := hotkeys.ParseCombo(cfg.Combo)
	if err != nil {
		return nil, fmt.Errorf("quit combo: %w", err)
	}
	if cfg.HoldSeconds < 1 {
		return nil, fmt.Errorf("quit hold duration must be at least one second")
	}
	return &Module{deps: deps, combo: combo, hold: cfg.HoldSeconds}, nil
}

func (m *Module) Name() string { return "quitguard" }

// Start intercepts the quit combo. The keystroke is never forwarded; the
// frontmost app only quits through the countdown completing.
func (m *Module) Start() error {
	return m.deps.Hotkeys.Register(hotkeys.Binding{
		Combo:  m.combo,
		Label:  "Hold to quit",
		OnDown: m.keyDown,
		OnUp:   m.keyUp,
	})
}

// Stop releases the hotkey and cancels a running countdown.
func (m *Module) Stop() {
	m.deps.Hotkeys.UnregisterAll()
	m.deps.Sched.StopAll()
	m.mu.Lock()
	m.ticker = nil
	m.remaining = 0
	m.mu.Unlock()
}

// keyDown starts the countdown. Key-repeat fires OnDown again while held;
// a running countdown is left alone.
func (m *Module) keyDown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ticker != nil {
		return
	}
	m.remaining = m.hold
	m.notify(m.remaining)
	m.ticker = m.deps.Sched.Every(tickInterval, m.tick)
}

// keyUp cancels and resets.
func (m *Module) keyUp() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ticker == nil {
		return
	}
	m.ticker.Cancel()
	m.ticker = nil
	m.remaining = 0
}

// tick decrements the countdown and terminates the frontmost app at zero.
func (m *Module) tick() {
	m.mu.Lock()
	if m.ticker == nil {
		m.mu.Unlock()
		return
	}
	m.remaining--
	remaining := m.remaining
	done := remaining <= 0
	if done {
		m.ticker.Cancel()
		m.ticker = nil
	}
	m.notify(remaining)
	m.mu.Unlock()

	if done {
		m.terminateFrontmost()
	}
}

func (m *Module) notify(remaining int) {
	if m.deps.OnCountdown != nil {
		m.deps.OnCountdown(remaining)
	}
}

func (m *Module) terminateFrontmost() {
	_, pid, err := m.deps.Apps.FrontmostApp()
	if err != nil {
		return
	}
	_ = m.deps.Apps.Terminate(pid)
}
