package filter

import "github.com/corey/bleep/internal/ports"

// Mask returns text with every byte covered by spans replaced by c.
// Spans may overlap or repeat; out-of-range bounds are clamped.
func Mask(text string, spans []ports.Span, c byte) string {
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, s := range spans {
		start, end := max(s.Start, 0), min(s.End, len(b))
		for i := start; i < end; i++ {
			b[i] = c
		}
	}
	return string(b)
}
