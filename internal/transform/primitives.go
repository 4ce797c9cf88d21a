// Package transform is the request/response transformation layer: pure
// normalization primitives, pagination, and the per-resource input and output
// shapers that sit between raw HTTP bodies and the relational store.
//
// Raw request bodies decode to map[string]any, so the primitives accept any
// and never panic: bad input falls back to a zero value or a caller-supplied
// default.
package transform

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// SanitizeString coerces v to a string, strips control characters (keeping
// tab, newline and carriage return), and trims surrounding whitespace.
// Non-string input yields the empty string.
func SanitizeString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		if r <= 0x08 || r == 0x0B || r == 0x0C || (r >= 0x0E && r <= 0x1F) || r == 0x7F {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Truncate sanitizes v and hard-cuts the result to max runes.
func Truncate(v any, max int) string {
	s := SanitizeString(v)
	if max < 0 {
		max = 0
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// EscapeHTML sanitizes v and escapes &, <, >, " and '. The ampersand is
// replaced first so already-escaped entities are not double-escaped.
func EscapeHTML(v any) string {
	s := SanitizeString(v)
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}

// ToInt parses v as an integer, returning def when it cannot.
func ToInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		i, err := strconv.Atoi(s)
		if err == nil {
			return i
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return int(f)
		}
	}
	return def
}

// ToFloat parses v as a float, returning def when it cannot.
func ToFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		if math.IsNaN(n) {
			return def
		}
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil && !math.IsNaN(f) {
			return f
		}
	}
	return def
}

// Clamp coerces v to a float and bounds it into [min, max] inclusive.
func Clamp(v any, min, max float64) float64 {
	f := ToFloat(v, min)
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}

// dateLayouts are tried in order when parsing date-like strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToTime parses v as a point in time. Returns nil for nil input and for
// values that cannot be parsed.
func ToTime(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, s)
			if err == nil {
				return &parsed
			}
		}
	}
	return nil
}

// ToISO renders v as an ISO-8601 (RFC 3339) UTC string. Returns nil for nil
// input and for values that cannot be parsed as a date.
func ToISO(v any) *string {
	t := ToTime(v)
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ToBool coerces v to a boolean. Booleans pass through, numbers are true when
// nonzero, and strings match case-insensitively against "true", "1" and
// "yes". Anything else is true exactly when non-nil.
func ToBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0 && !math.IsNaN(b)
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true
		}
		return false
	case nil:
		return false
	}
	return true
}

// CoerceEnum sanitizes v and returns it when it is a member of allowed,
// falling back to def otherwise. This is the silent-default policy; the
// enforcing counterpart is validation.Enum.
func CoerceEnum(v any, allowed []string, def string) string {
	s := SanitizeString(v)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}
