package store

import "time"

// DateLayout is the persisted and wire date format. Dates are stored as
// dd-mm-yyyy text and must round-trip losslessly, so inputs are kept verbatim
// and only parsed for validation and ordering.
const DateLayout = "02-01-2006"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// ParseDate validates and parses a dd-mm-yyyy date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidStatus reports whether s is one of the two accepted status tokens.
// Matching is case-sensitive: "present" is rejected.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}
