package palette

import (
	"strconv"
	"testing"
)

func channels(t *testing.T, hex string) (r, g, b int64) {
	t.Helper()
	if len(hex) != 7 || hex[0] != '#' {
		t.Fatalf("not a 6-digit hex color: %q", hex)
	}
	parse := func(s string) int64 {
		v, err := strconv.ParseInt(s, 16, 64)
		if err != nil {
			t.Fatalf("bad hex %q: %v", hex, err)
		}
		return v
	}
	return parse(hex[1:3]), parse(hex[3:5]), parse(hex[5:7])
}

func TestNew_MonotonicDarkening(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatalf("New(4) error = %v", err)
	}

	var bgs [4]string
	for j := range bgs {
		bg, ok := p.Background(j, "filled")
		if !ok {
			t.Fatalf("Background(%d, filled) not found", j)
		}
		bgs[j] = bg
	}

	if bgs[0] != "#00ff00" {
		t.Errorf("bucket 0 = %q, want the base color #00ff00", bgs[0])
	}
	if bgs[3] != "#000000" {
		t.Errorf("last bucket = %q, want #000000", bgs[3])
	}
	for j := 1; j <= 2; j++ {
		_, gPrev, _ := channels(t, bgs[j-1])
		_, gCur, _ := channels(t, bgs[j])
		if gCur >= gPrev {
			t.Errorf("bucket %d green channel = %d, want strictly darker than bucket %d (%d)", j, gCur, j-1, gPrev)
		}
		if gCur <= 0 {
			t.Errorf("bucket %d green channel = %d, want strictly lighter than black", j, gCur)
		}
	}
}

func TestNew_LevelsValidation(t *testing.T) {
	for _, levels := range []int{-1, 0, 1} {
		if _, err := New(levels); err == nil {
			t.Errorf("New(%d) error = nil, want an error", levels)
		}
	}
}

func TestNew_Memoized(t *testing.T) {
	a, err := New(6)
	if err != nil {
		t.Fatalf("New(6) error = %v", err)
	}
	b, err := New(6)
	if err != nil {
		t.Fatalf("New(6) error = %v", err)
	}
	if a != b {
		t.Error("New(6) built two palettes, want the memoized one")
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#00ff00", "#000000"}, // bright green reads best in black
		{"#aa55ff", "#000000"}, // the new-order purple sits just above the threshold
		{"#333333", "#ffffff"},
		{"#fff", "#000000"}, // shorthand hex
	}
	for _, tt := range tests {
		if got := ContrastText(tt.bg); got != tt.want {
			t.Errorf("ContrastText(%q) = %q, want %q", tt.bg, got, tt.want)
		}
	}
}

func TestForeground_MatchesBackgroundGeneration(t *testing.T) {
	p, err := New(5)
	if err != nil {
		t.Fatalf("New(5) error = %v", err)
	}
	for j := 0; j < 5; j++ {
		for key := range base {
			bg, ok := p.Background(j, key)
			if !ok {
				t.Fatalf("Background(%d, %s) not found", j, key)
			}
			fg, ok := p.Foreground(j, key)
			if !ok {
				t.Fatalf("Foreground(%d, %s) not found", j, key)
			}
			if want := ContrastText(bg); fg != want {
				t.Errorf("Foreground(%d, %s) = %q, want contrast of %q = %q", j, key, fg, bg, want)
			}
		}
	}
}

func TestStatusKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Partially Filled", "partially_filled"},
		{"NEW", "new"},
		{" canceled ", "canceled"},
	}
	for _, tt := range tests {
		if got := StatusKey(tt.in); got != tt.want {
			t.Errorf("StatusKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
