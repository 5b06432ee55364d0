// Package palette maps the age of an order-book record to a progressively
// darker color scheme, so fresh activity pops out and stale rows fade away.
//
// A palette has a fixed number of levels. Level 0 is the base color per order
// status, the last level is solid black, and the levels in between fade each
// channel linearly toward black. The foreground of every level is the
// higher-contrast of black and white against its background.
package palette

import (
	"fmt"
	"math"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultLevels is the number of fade steps the dashboard uses when the
// operator configures nothing else.
const DefaultLevels = 12

// base background per status key, freshest shade.
var base = map[string]string{
	"new":                "#aa55ff", // purple
	"partially_filled":   "#11aaff", // blue
	"filled":             "#00ff00", // green
	"partially_canceled": "#fff700", // yellow
	"canceled":           "#ff5555", // red
	"rejected":           "#ff5555",
	"expired":            "#ff5555",
}

const (
	black = "#000000"
	white = "#ffffff"
)

// Palette holds the precomputed background and foreground tables. It is
// immutable after construction and safe for concurrent use.
type Palette struct {
	levels int
	bg     []map[string]string
	fg     []map[string]string
}

var (
	cacheMu sync.Mutex
	cache   = map[int]*Palette{}
)

// New builds (or returns the memoized) palette with the given number of fade
// levels. levels must be at least 2: the base shade and the final black.
func New(levels int) (*Palette, error) {
	if levels < 2 {
		return nil, fmt.Errorf("palette: levels must be at least 2, got %d", levels)
	}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cache[levels]; ok {
		return p, nil
	}

	p := &Palette{
		levels: levels,
		bg:     make([]map[string]string, levels),
		fg:     make([]map[string]string, levels),
	}
	for j := 0; j < levels; j++ {
		row := make(map[string]string, len(base))
		switch {
		case j == 0:
			for k, c := range base {
				row[k] = c
			}
		case j == levels-1:
			for k := range base {
				row[k] = black
			}
		default:
			fade := float64(j) / float64(levels-1)
			for k, c := range base {
				row[k] = darken(c, fade)
			}
		}
		p.bg[j] = row

		fgRow := make(map[string]string, len(row))
		for k, c := range row {
			fgRow[k] = ContrastText(c)
		}
		p.fg[j] = fgRow
	}
	cache[levels] = p
	return p, nil
}

// Levels returns the number of fade levels.
func (p *Palette) Levels() int { return p.levels }

// Background returns the background color for a bucket and status key.
func (p *Palette) Background(bucket int, statusKey string) (string, bool) {
	if bucket < 0 || bucket >= p.levels {
		return "", false
	}
	c, ok := p.bg[bucket][statusKey]
	return c, ok
}

// Foreground returns the precomputed contrast color for a bucket and status
// key. It is read from the same generation as the background, so the two are
// always from matching color families.
func (p *Palette) Foreground(bucket int, statusKey string) (string, bool) {
	if bucket < 0 || bucket >= p.levels {
		return "", false
	}
	c, ok := p.fg[bucket][statusKey]
	return c, ok
}

// darken blends c toward black by fraction t: out = round(channel * (1-t))
// per RGB channel.
func darken(c string, t float64) string {
	col, err := colorful.Hex(c)
	if err != nil {
		return black
	}
	r, g, b := col.RGB255()
	fade := func(ch uint8) uint8 {
		v := math.Round(float64(ch) * (1 - t))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return fmt.Sprintf("#%02x%02x%02x", fade(r), fade(g), fade(b))
}

// ContrastText picks black or white text for best legibility on the given
// background, using the broadcast YIQ luma approximation:
//
//	yiq = (R*299 + G*587 + B*114) / 1000
//
// Black when yiq ≥ 128, white otherwise. Shorthand #rgb hex is accepted.
func ContrastText(bg string) string {
	col, err := colorful.Hex(strings.TrimSpace(bg))
	if err != nil {
		return white
	}
	r, g, b := col.RGB255()
	yiq := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
	if yiq >= 128 {
		return black
	}
	return white
}

// StatusKey normalizes a status for palette lookup: lower-case, spaces to
// underscores.
func StatusKey(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "_")
}
