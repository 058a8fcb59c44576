package quitguard

import (
	"sync"
	"testing"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
	"github.com/dbmrq/spoons/internal/sched"
)

type fakeApps struct {
	mu         sync.Mutex
	terminated []int
}

func (f *fakeApps) FrontmostApp() (string, int, error) { return "Safari", 42, nil }

func (f *fakeApps) Terminate(pid int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, pid)
	return nil
}

func (f *fakeApps) killed() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.terminated...)
}

type fakeRegistrar struct{ bindings []hotkeys.Binding }

func (f *fakeRegistrar) Register(b hotkeys.Binding) error {
	f.bindings = append(f.bindings, b)
	return nil
}

func (f *fakeRegistrar) UnregisterAll() { f.bindings = nil }

func guardModule(t *testing.T, holdSeconds int, onCountdown func(int)) (*Module, *fakeApps, *fakeRegistrar) {
	t.Helper()
	apps := &fakeApps{}
	reg := &fakeRegistrar{}
	cfg := config.QuitGuardConfig{Combo: "cmd+q", HoldSeconds: holdSeconds}
	mod, err := New(cfg, Deps{
		Apps:        apps,
		Hotkeys:     reg,
		Sched:       sched.New(),
		OnCountdown: onCountdown,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := mod.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return mod, apps, reg
}

func TestInterceptedComboDoesNotQuitImmediately(t *testing.T) {
	mod, apps, reg := guardModule(t, 2, nil)
	defer mod.Stop()

	reg.bindings[0].OnDown()
	reg.bindings[0].OnUp()

	if killed := apps.killed(); len(killed) != 0 {
		t.Errorf("terminated %v on a tap", killed)
	}
}

func TestCountdownTerminatesAtZeroWhileHeld(t *testing.T) {
	var counts []int
	mod, apps, reg := guardModule(t, 3, func(n int) { counts = append(counts, n) })
	defer mod.Stop()

	reg.bindings[0].OnDown()
	// Drive the ticks directly instead of waiting wall-clock seconds.
	mod.tick()
	mod.tick()
	if killed := apps.killed(); len(killed) != 0 {
		t.Fatalf("terminated %v before the countdown finished", killed)
	}
	mod.tick()

	if killed := apps.killed(); len(killed) != 1 || killed[0] != 42 {
		t.Errorf("terminated = %v, want [42]", killed)
	}
	want := []int{3, 2, 1, 0}
	if len(counts) != len(want) {
		t.Fatalf("countdown notifications = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("countdown notifications = %v, want %v", counts, want)
			break
		}
	}
}

func TestReleaseCancelsAndResets(t *testing.T) {
	mod, apps, reg := guardModule(t, 2, nil)
	defer mod.Stop()

	reg.bindings[0].OnDown()
	mod.tick()
	reg.bindings[0].OnUp()
	mod.tick() // a late tick after cancellation

	if killed := apps.killed(); len(killed) != 0 {
		t.Errorf("terminated %v after release", killed)
	}

	// A fresh hold starts from the full duration.
	reg.bindings[0].OnDown()
	mod.tick()
	if killed := apps.killed(); len(killed) != 0 {
		t.Errorf("terminated %v one tick into a fresh hold", killed)
	}
}

func TestKeyRepeatDoesNotRestartCountdown(t *testing.T) {
	mod, apps, reg := guardModule(t, 2, nil)
	defer mod.Stop()

	reg.bindings[0].OnDown()
	mod.tick()
	reg.bindings[0].OnDown() // key repeat while held
	mod.tick()

	if killed := apps.killed(); len(killed) != 1 {
		t.Errorf("terminated = %v, want one termination", killed)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	deps := Deps{}
	if _, err := New(config.QuitGuardConfig{Combo: "not a combo +", HoldSeconds: 2}, deps); err == nil {
		t.Error("expected error for a bad combo")
	}
	if _, err := New(config.QuitGuardConfig{Combo: "cmd+q", HoldSeconds: 0}, deps); err == nil {
		t.Error("expected error for a zero hold duration")
	}
}
