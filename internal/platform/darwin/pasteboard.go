//go:build darwin

package darwin

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Pasteboard implements platform.Pasteboard using pbcopy/pbpaste.
type Pasteboard struct{}

// NewPasteboard returns a new Pasteboard instance.
func NewPasteboard() *Pasteboard {
	return &Pasteboard{}
}

// GetText reads the current text content from the system pasteboard.
func (p *Pasteboard) GetText() (string, error) {
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("pbpaste: %w", err)
	}
	return string(out), nil
}

// SetText writes text to the system pasteboard.
func (p *Pasteboard) SetText(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}

// Clear empties the system pasteboard.
func (p *Pasteboard) Clear() error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = bytes.NewReader(nil)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}
