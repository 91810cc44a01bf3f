package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// ColorWentWell is the card color for positive responses.
	ColorWentWell = "#10b981"
	// ColorDidntGoWell is the card color for negative responses.
	ColorDidntGoWell = "#ef4444"

	linkedLabelSeparator = " + "
	ellipsis             = "..."
)

// ValidCategory reports whether c is a known response category.
func ValidCategory(c Category) bool {
	return c == CategoryWentWell || c == CategoryDidntGoWell
}

// CategoryColor returns the display color for a category.
func CategoryColor(c Category) string {
	if c == CategoryWentWell {
		return ColorWentWell
	}
	return ColorDidntGoWell
}

// Preview truncates s to max runes, appending an ellipsis when cut.
func Preview(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + ellipsis
}

// Topmost returns whichever of a and b sits higher on the canvas (smaller Y).
// On a tie a wins.
func Topmost(a, b *Response) *Response {
	if b.Position.Y < a.Position.Y {
		return b
	}
	return a
}

// LinkedLabel joins member contents into one bounded label.
func LinkedLabel(members []*Response, max int) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, strings.TrimSpace(m.Content))
	}
	return Preview(strings.Join(parts, linkedLabelSeparator), max)
}
