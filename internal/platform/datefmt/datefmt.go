package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Canonical is the storage representation for every date-time column.
const Canonical = "2006-01-02 15:04:05"

// Input layouts accepted from callers, tried in order. Anything finer than
// a second, and any timezone offset, is dropped on normalization.
var inputLayouts = []string{
	Canonical,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// Parse interprets value against the accepted layouts.
func Parse(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// Normalize parses value and renders it in the canonical format.
func Normalize(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return t.Format(Canonical), nil
}

// Now renders the current local time in the canonical format.
func Now() string {
	return time.Now().Format(Canonical)
}
