package domain

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD calendar date in UTC
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
