package utils

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseTime accepts the date shapes clients send: RFC3339 with or without
// fractional seconds, or a bare calendar date.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), true
		}
	}
	return time.Time{}, false
}

// ExtractTime reads a date out of a loosely typed aggregation row.
func ExtractTime(m bson.M, key string) (time.Time, bool) {
	v, ok := m[key]
	if !ok {
		return time.Time{}, false
	}
	switch tv := v.(type) {
	case time.Time:
		return tv, true
	case bson.DateTime:
		return tv.Time(), true
	case string:
		return ParseTime(tv)
	}
	return time.Time{}, false
}

// ParseBool returns nil when the query value is absent or not a boolean.
func ParseBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// ParseLimit returns def for missing or non-positive values and caps at max.
func ParseLimit(s string, def, max int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
