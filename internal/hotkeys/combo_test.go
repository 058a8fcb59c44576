package hotkeys

import "testing"

func TestParseCombo(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ctrl+alt+cmd+left", "alt+cmd+ctrl+left", false},
		{"cmd+c", "cmd+c", false},
		{"Command+Shift+V", "cmd+shift+v", false},
		{"opt+right", "alt+right", false},
		{"q", "q", false},
		{"super+space", "cmd+space", false},
		{"cmd+alt", "", true},       // no key
		{"cmd+cmd+c", "", true},     // duplicate modifier
		{"cmd+c+v", "", true},       // two keys
		{"", "", true},              // empty
		{"cmd++c", "", true},        // empty token
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseCombo(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.in, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.String() != tt.want {
				t.Errorf("ParseCombo(%q).String() = %q, want %q", tt.in, c.String(), tt.want)
			}
		})
	}
}

func TestSameMods(t *testing.T) {
	c, err := ParseCombo("ctrl+alt+cmd+left")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		mods []string
		want bool
	}{
		{"exact", []string{"ctrl", "alt", "cmd"}, true},
		{"different order", []string{"cmd", "ctrl", "alt"}, true},
		{"aliases", []string{"control", "option", "command"}, true},
		{"subset", []string{"ctrl", "alt"}, false},
		{"superset", []string{"ctrl", "alt", "cmd", "shift"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SameMods(tt.mods); got != tt.want {
				t.Errorf("SameMods(%v) = %v, want %v", tt.mods, got, tt.want)
			}
		})
	}
}

func TestNormalizeMods(t *testing.T) {
	got := NormalizeMods([]string{"Command", "opt", "ctrl", "command", "bogus"})
	want := []string{"alt", "cmd", "ctrl"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeMods = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeMods = %v, want %v", got, want)
		}
	}
}
