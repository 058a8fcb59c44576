//go:build darwin && cgo

package darwin

import "github.com/dbmrq/spoons/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		screens := NewScreenList()
		return &platform.Provider{
			WindowManager: NewWindowManager(screens),
			Screens:       screens,
			Pasteboard:    NewPasteboard(),
			Keyboard:      NewKeyboard(),
			FocusInfo:     NewFocus(),
			AppControl:    NewAppControl(),
			Overlay:       NewOverlay(),
			ModifierTap:   NewModifierTap(),
		}, nil
	}
	platform.RequestPermissionsFunc = RequestAccessibilityPermission
}
