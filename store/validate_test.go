package store

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"21-03-2024", true},
		{"01-01-2024", true},
		{"31-12-1999", true},
		{"2024-03-21", false},
		{"21/03/2024", false},
		{"32-01-2024", false},
		{"01-13-2024", false},
		{"", false},
		{"yesterday", false},
	}
	for _, test := range tests {
		_, err := ParseDate(test.in)
		if test.ok && err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", test.in, err)
		}
		if !test.ok && !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): want ErrInvalidDate, got %v", test.in, err)
		}
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"Present", true},
		{"Absent", true},
		{"present", false},
		{"absent", false},
		{"PRESENT", false},
		{"Late", false},
		{"", false},
	}
	for _, test := range tests {
		if got := ValidStatus(test.in); got != test.ok {
			t.Errorf("ValidStatus(%q) = %v, want %v", test.in, got, test.ok)
		}
	}
}
