// Package hotkeys owns global hotkey registration. A Registry maps parsed
// combos to action callbacks via golang.design/x/hotkey and exposes its live
// bindings so the hint overlay can enumerate them.
package hotkeys

import (
	"fmt"
	"sort"
	"sync"

	"golang.design/x/hotkey"
)

// Binding associates a combo with an action and a human-readable label.
type Binding struct {
	Combo Combo
	Label string
	// OnDown fires when the combo is pressed. Required.
	OnDown func()
	// OnUp fires when the combo is released. Optional; used by handlers
	// that care about hold duration.
	OnUp func()
}

// Registry owns a set of registered global hotkeys.
type Registry struct {
	mu    sync.Mutex
	bound []*boundKey
}

type boundKey struct {
	binding Binding
	hk      *hotkey.Hotkey
	done    chan struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register registers the binding with the OS and starts dispatching its
// events. Fails when the combo cannot be mapped or is taken by another app.
func (r *Registry) Register(b Binding) error {
	if b.OnDown == nil {
		return fmt.Errorf("binding %q has no handler", b.Combo)
	}
	mods, err := osModifiers(b.Combo.Mods)
	if err != nil {
		return err
	}
	key, err := osKey(b.Combo.Key)
	if err != nil {
		return err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %q: %w", b.Combo, err)
	}

	bk := &boundKey{binding: b, hk: hk, done: make(chan struct{})}
	go bk.dispatch()

	r.mu.Lock()
	r.bound = append(r.bound, bk)
	r.mu.Unlock()
	return nil
}

func (bk *boundKey) dispatch() {
	for {
		select {
		case <-bk.done:
			return
		case <-bk.hk.Keydown():
			bk.binding.OnDown()
		case <-bk.hk.Keyup():
			if bk.binding.OnUp != nil {
				bk.binding.OnUp()
			}
		}
	}
}

// UnregisterAll tears down every registered hotkey. The registry is
// reusable afterwards.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	bound := r.bound
	r.bound = nil
	r.mu.Unlock()

	for _, bk := range bound {
		close(bk.done)
		bk.hk.Unregister()
	}
}

// Bindings returns a snapshot of the currently registered bindings.
func (r *Registry) Bindings() []Binding {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Binding, 0, len(r.bound))
	for _, bk := range r.bound {
		out = append(out, bk.binding)
	}
	return out
}

// MatchingModifiers returns bindings whose modifier set equals mods exactly,
// sorted alphabetically by label. Callers with their own priority ordering
// re-sort the result.
func (r *Registry) MatchingModifiers(mods []string) []Binding {
	var out []Binding
	for _, b := range r.Bindings() {
		if b.Combo.SameMods(mods) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
