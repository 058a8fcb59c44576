package platform

import "testing"

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		in         string
		cols, rows int
		wantErr    bool
	}{
		{"6x6", 6, 6, false},
		{"4X3", 4, 3, false},
		{" 8 x 2 ", 8, 2, false},
		{"6", 0, 0, true},
		{"0x6", 0, 0, true},
		{"-2x4", 0, 0, true},
		{"axb", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cols, rows, err := ParseGridSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("got %dx%d, want %dx%d", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestParseMargin(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{"5,5", 5, 5, false},
		{"0,0", 0, 0, false},
		{" 10 , 2 ", 10, 2, false},
		{"5", 0, 0, true},
		{"-1,5", 0, 0, true},
		{"a,b", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseMargin(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("got %+v, want {%d %d}", p, tt.x, tt.y)
			}
		})
	}
}
