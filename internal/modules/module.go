// Package modules defines the lifecycle contract shared by all spoons
// modules and a manager that starts and stops them as a group.
package modules

import (
	"fmt"

	"github.com/dbmrq/spoons/internal/hotkeys"
)

// Module is a self-contained automation unit. Start registers hotkeys and
// event handlers; Stop releases them. A stopped module must be restartable.
type Module interface {
	Name() string
	Start() error
	Stop()
}

// HotkeyRegistrar is the slice of hotkeys.Registry that modules depend on,
// kept narrow so tests can substitute a fake.
type HotkeyRegistrar interface {
	Register(b hotkeys.Binding) error
	UnregisterAll()
}

// Manager owns an ordered set of modules.
type Manager struct {
	modules []Module
	started []Module
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends a module. Nil modules (disabled in config) are skipped.
func (m *Manager) Add(mod Module) {
	if mod != nil {
		m.modules = append(m.modules, mod)
	}
}

// Modules returns the registered modules in order.
func (m *Manager) Modules() []Module {
	return m.modules
}

// StartAll starts every module in order. On the first failure it stops the
// modules already started and returns the error.
func (m *Manager) StartAll() error {
	for _, mod := range m.modules {
		if err := mod.Start(); err != nil {
			m.StopAll()
			return fmt.Errorf("start %s: %w", mod.Name(), err)
		}
		m.started = append(m.started, mod)
	}
	return nil
}

// StopAll stops started modules in reverse order.
func (m *Manager) StopAll() {
	for i := len(m.started) - 1; i >= 0; i-- {
		m.started[i].Stop()
	}
	m.started = nil
}
