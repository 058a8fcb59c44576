//go:build !darwin

package hotkeys

import (
	"fmt"

	"golang.design/x/hotkey"
)

func osModifiers(mods []string) ([]hotkey.Modifier, error) {
	return nil, fmt.Errorf("hotkeys are only supported on darwin")
}

func osKey(key string) (hotkey.Key, error) {
	return 0, fmt.Errorf("hotkeys are only supported on darwin")
}
