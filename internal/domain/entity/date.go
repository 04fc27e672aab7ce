// Package entity defines the core business entities for the domain layer.
package entity

import (
	"bytes"
	"time"
)

// localDateLayout is the wire format for calendar dates (zero-padded YYYY-MM-DD).
const localDateLayout = "2006-01-02"

// LocalDate is a calendar date in the device's local timezone, formatted as
// YYYY-MM-DD. It is the equality key for "already checked in today" and the
// boundary unit for period aggregation. The zero value means "no date".
type LocalDate string

// Today returns the local calendar date containing the given instant.
func Today(now time.Time) LocalDate {
	return LocalDate(now.Format(localDateLayout))
}

// IsZero reports whether the date is unset.
func (d LocalDate) IsZero() bool {
	return d == ""
}

// Time parses the date as local midnight. Unset or malformed dates return the
// zero time; callers treat those entries as outside every aggregation window.
func (d LocalDate) Time() time.Time {
	if d == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(localDateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SameMonth reports whether both dates fall in the same month of the same year.
func (d LocalDate) SameMonth(other LocalDate) bool {
	a, b := d.Time(), other.Time()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

var nullLiteral = []byte("null")

// MarshalJSON encodes the zero value as JSON null, matching the stored record
// shape where lastCheckInDate is null until the first check-in.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	if d == "" {
		return nullLiteral, nil
	}
	return []byte(`"` + string(d) + `"`), nil
}

// UnmarshalJSON accepts either a date string or null.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*d = ""
		return nil
	}
	s := bytes.Trim(data, `"`)
	*d = LocalDate(s)
	return nil
}
