package palette

import "time"

// Style is a background/foreground pair ready for row-level rendering.
type Style struct {
	Background string
	Foreground string
}

// Bucket returns the fade bucket for a record of the given age. Each
// freshWindow of age pushes the record one bucket darker; ages in the future
// clamp to the freshest bucket.
func Bucket(age, freshWindow time.Duration) int {
	if age < 0 {
		return 0
	}
	return int(age / freshWindow)
}

// StyleFor returns the style for a record updated at updatedAt with the given
// status. The second return is false when the record should stay unstyled:
// no determinable age (zero updatedAt), older than all buckets, or an unknown
// status. Failing open keeps a benign missing timestamp from hiding the row.
func (p *Palette) StyleFor(updatedAt, now time.Time, status string, freshWindow time.Duration) (Style, bool) {
	if updatedAt.IsZero() || freshWindow <= 0 {
		return Style{}, false
	}
	bucket := Bucket(now.Sub(updatedAt), freshWindow)
	if bucket >= p.levels {
		return Style{}, false
	}
	key := StatusKey(status)
	bg, ok := p.Background(bucket, key)
	if !ok {
		return Style{}, false
	}
	fg, _ := p.Foreground(bucket, key)
	return Style{Background: bg, Foreground: fg}, true
}
