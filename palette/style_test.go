package palette

import (
	"testing"
	"time"
)

func TestBucket(t *testing.T) {
	window := 60 * time.Second
	tests := []struct {
		age  time.Duration
		want int
	}{
		{59 * time.Second, 0},
		{61 * time.Second, 1},
		{0, 0},
		{-5 * time.Second, 0}, // clock skew clamps to freshest
		{10 * time.Minute, 10},
	}
	for _, tt := range tests {
		if got := Bucket(tt.age, window); got != tt.want {
			t.Errorf("Bucket(%v, %v) = %d, want %d", tt.age, window, got, tt.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatalf("New(4) error = %v", err)
	}
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	window := 60 * time.Second

	tests := []struct {
		name      string
		updatedAt time.Time
		status    string
		styled    bool
		wantBg    string
	}{
		{
			name:      "fresh order gets the base color",
			updatedAt: now.Add(-59 * time.Second),
			status:    "filled",
			styled:    true,
			wantBg:    "#00ff00",
		},
		{
			name:      "one window old moves one bucket",
			updatedAt: now.Add(-61 * time.Second),
			status:    "filled",
			styled:    true,
		},
		{
			name:      "older than all buckets is unstyled",
			updatedAt: now.Add(-5 * time.Minute),
			status:    "filled",
		},
		{
			name:   "zero timestamp is unstyled",
			status: "filled",
		},
		{
			name:      "unknown status is unstyled",
			updatedAt: now.Add(-10 * time.Second),
			status:    "haunted",
		},
		{
			name:      "status normalization accepts display casing",
			updatedAt: now.Add(-10 * time.Second),
			status:    "Partially Filled",
			styled:    true,
			wantBg:    "#11aaff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, ok := p.StyleFor(tt.updatedAt, now, tt.status, window)
			if ok != tt.styled {
				t.Fatalf("StyleFor() styled = %v, want %v", ok, tt.styled)
			}
			if !ok {
				return
			}
			if tt.wantBg != "" && style.Background != tt.wantBg {
				t.Errorf("Background = %q, want %q", style.Background, tt.wantBg)
			}
			if style.Foreground != ContrastText(style.Background) {
				t.Errorf("Foreground = %q, want the precomputed contrast of %q", style.Foreground, style.Background)
			}
		})
	}
}

func TestStyleFor_InvalidWindow(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatalf("New(3) error = %v", err)
	}
	now := time.Now()
	if _, ok := p.StyleFor(now.Add(-time.Second), now, "new", 0); ok {
		t.Error("StyleFor with zero fresh window styled the row, want unstyled")
	}
}
