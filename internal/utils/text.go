package utils

import (
	"strings"
	"time"
)

// Now is the clock used for stored timestamps. Millisecond precision keeps a
// BSON round trip lossless.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func Trim(s string) string { return strings.TrimSpace(s) }

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimPtr trims in place and returns p for chaining.
func TrimPtr(p *string) *string {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
	return p
}

// TrimAll trims every entry and drops the ones left empty.
func TrimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
