package textkeys

import (
	"reflect"
	"testing"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/hotkeys"
)

type fakeKeyboard struct{ combos [][]string }

func (f *fakeKeyboard) KeyCombo(keys []string) error {
	f.combos = append(f.combos, keys)
	return nil
}

func (f *fakeKeyboard) TypeText(text string, delayMs int) error { return nil }

type fakeFocus struct{ role string }

func (f *fakeFocus) FocusedRole() string { return f.role }

type fakeRegistrar struct{ bindings []hotkeys.Binding }

func (f *fakeRegistrar) Register(b hotkeys.Binding) error {
	f.bindings = append(f.bindings, b)
	return nil
}

func (f *fakeRegistrar) UnregisterAll() { f.bindings = nil }

func (f *fakeRegistrar) press(comboKey string, mods ...string) {
	for _, b := range f.bindings {
		if b.Combo.Key == comboKey && b.Combo.SameMods(mods) {
			b.OnDown()
		}
	}
}

func startModule(t *testing.T, cfg config.TextKeysConfig, focus *fakeFocus) (*Module, *fakeKeyboard, *fakeRegistrar) {
	t.Helper()
	kb := &fakeKeyboard{}
	reg := &fakeRegistrar{}
	mod, err := New(cfg, Deps{Keyboard: kb, Focus: focus, Hotkeys: reg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := mod.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return mod, kb, reg
}

func TestStartRegistersWholeTable(t *testing.T) {
	mod, _, reg := startModule(t, config.TextKeysConfig{}, &fakeFocus{})
	defer mod.Stop()

	if len(reg.bindings) != len(shortcuts) {
		t.Errorf("registered %d bindings, want %d", len(reg.bindings), len(shortcuts))
	}
}

func TestLineStartTranslatesToCmdLeft(t *testing.T) {
	mod, kb, reg := startModule(t, config.TextKeysConfig{}, &fakeFocus{})
	defer mod.Stop()

	reg.press("a", "ctrl")

	want := [][]string{{"cmd", "left"}}
	if !reflect.DeepEqual(kb.combos, want) {
		t.Errorf("sent %v, want %v", kb.combos, want)
	}
}

func TestKillLineSendsSelectThenDelete(t *testing.T) {
	mod, kb, reg := startModule(t, config.TextKeysConfig{}, &fakeFocus{})
	defer mod.Stop()

	reg.press("k", "ctrl")

	want := [][]string{{"shift", "cmd", "right"}, {"forwarddelete"}}
	if !reflect.DeepEqual(kb.combos, want) {
		t.Errorf("sent %v, want %v", kb.combos, want)
	}
}

func TestGatedOutsideTextFieldForwardsOriginal(t *testing.T) {
	cfg := config.TextKeysConfig{OnlyInTextFields: true}
	focus := &fakeFocus{role: "AXButton"}
	mod, kb, reg := startModule(t, cfg, focus)
	defer mod.Stop()

	reg.press("f", "alt")

	want := [][]string{{"alt", "f"}}
	if !reflect.DeepEqual(kb.combos, want) {
		t.Errorf("sent %v, want the original keystroke %v", kb.combos, want)
	}
}

func TestGatedInsideTextFieldTranslates(t *testing.T) {
	cfg := config.TextKeysConfig{OnlyInTextFields: true}
	focus := &fakeFocus{role: "AXTextArea"}
	mod, kb, reg := startModule(t, cfg, focus)
	defer mod.Stop()

	reg.press("f", "alt")

	want := [][]string{{"alt", "right"}}
	if !reflect.DeepEqual(kb.combos, want) {
		t.Errorf("sent %v, want %v", kb.combos, want)
	}
}

func TestForwardedKeystrokeDoesNotLoop(t *testing.T) {
	cfg := config.TextKeysConfig{OnlyInTextFields: true}
	focus := &fakeFocus{role: "AXButton"}
	mod, kb, reg := startModule(t, cfg, focus)
	defer mod.Stop()

	reg.press("f", "alt")
	reg.press("f", "alt") // our own forwarded event arriving back

	if len(kb.combos) != 1 {
		t.Errorf("forwarded %d keystrokes, want 1", len(kb.combos))
	}
}
