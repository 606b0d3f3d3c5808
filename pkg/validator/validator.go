package validator

import (
	"regexp"
	"strings"
	"time"
)

// Form-level validation helpers for callers of the workforce store. The
// store itself trusts its input and never runs these.

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate parses a calendar date in YYYY-MM-DD form.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsOrderedDateRange reports whether end is on or after start.
func IsOrderedDateRange(start, end time.Time) bool {
	return !end.Before(start)
}
