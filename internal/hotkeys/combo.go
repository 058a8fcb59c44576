package hotkeys

import (
	"fmt"
	"sort"
	"strings"
)

// Combo is a parsed modifier/key combination like "ctrl+alt+cmd+left".
type Combo struct {
	Mods []string // normalized, sorted: "alt", "cmd", "ctrl", "shift"
	Key  string   // lowercase key name
}

var modAliases = map[string]string{
	"cmd": "cmd", "command": "cmd", "super": "cmd",
	"ctrl": "ctrl", "control": "ctrl",
	"alt": "alt", "opt": "alt", "option": "alt",
	"shift": "shift",
}

// ParseCombo parses a "+"-separated combo string. The last non-modifier
// token is the key; every modifier may appear at most once.
func ParseCombo(s string) (Combo, error) {
	parts := strings.Split(s, "+")
	var c Combo
	seen := make(map[string]bool)
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return Combo{}, fmt.Errorf("invalid combo %q: empty token", s)
		}
		if mod, ok := modAliases[p]; ok {
			if seen[mod] {
				return Combo{}, fmt.Errorf("invalid combo %q: duplicate modifier %q", s, mod)
			}
			seen[mod] = true
			c.Mods = append(c.Mods, mod)
			continue
		}
		if c.Key != "" {
			return Combo{}, fmt.Errorf("invalid combo %q: multiple keys (%q and %q)", s, c.Key, p)
		}
		c.Key = p
	}
	if c.Key == "" {
		return Combo{}, fmt.Errorf("invalid combo %q: no key", s)
	}
	sort.Strings(c.Mods)
	return c, nil
}

// String renders the combo in canonical "mods+key" form.
func (c Combo) String() string {
	if len(c.Mods) == 0 {
		return c.Key
	}
	return strings.Join(c.Mods, "+") + "+" + c.Key
}

// SameMods reports whether the combo's modifier set equals mods exactly.
// The argument may be unnormalized ("opt", "command", any order).
func (c Combo) SameMods(mods []string) bool {
	norm := NormalizeMods(mods)
	if len(norm) != len(c.Mods) {
		return false
	}
	for i := range norm {
		if norm[i] != c.Mods[i] {
			return false
		}
	}
	return true
}

// NormalizeMods maps aliases to canonical names, drops duplicates and
// unknown tokens, and sorts.
func NormalizeMods(mods []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range mods {
		canon, ok := modAliases[strings.ToLower(strings.TrimSpace(m))]
		if !ok || seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, canon)
	}
	sort.Strings(out)
	return out
}
