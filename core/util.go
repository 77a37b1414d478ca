package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateLayout        = "2006-01-02" // wire format of the backend's dates
	DisplayDateLayout = "02/01/2006"
	Ellipsis          = "..."
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// EscapeHTML makes `s` safe to embed in HTML text and attribute values.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(s)
}

// FormatDate turns a backend date (YYYY-MM-DD) into DD/MM/YYYY.
// Empty or unparsable dates render as "-".
func FormatDate(date string) string {
	if date == "" {
		return "-"
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "-"
	}
	return d.Format(DisplayDateLayout)
}

// Truncate shortens `s` to `max` runes followed by an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + Ellipsis
}
