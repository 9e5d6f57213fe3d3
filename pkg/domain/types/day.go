package types

import (
	"fmt"
	"time"
)

// DayLayout is the only accepted textual form of a Day
const DayLayout = "2006-01-02"

// Day is a calendar day in YYYY-MM-DD form. It carries no time zone: two
// entries belong to the same day iff their Day values are byte-equal.
type Day string

// ParseDay validates s as a canonical YYYY-MM-DD date
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: must be YYYY-MM-DD", s)
	}
	// time.Parse accepts some non-canonical forms; require a round trip.
	if t.Format(DayLayout) != s {
		return "", fmt.Errorf("invalid day %q: must be YYYY-MM-DD", s)
	}
	return Day(s), nil
}

// DayOf returns the Day of t in t's location
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// IsValid reports whether d is a canonical YYYY-MM-DD date
func (d Day) IsValid() bool {
	_, err := ParseDay(string(d))
	return err == nil
}

// Month returns the YYYY-MM prefix of the day
func (d Day) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

// Start returns local midnight of the day in loc
func (d Day) Start(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", d, err)
	}
	return t, nil
}

// String returns the string representation of the day
func (d Day) String() string {
	return string(d)
}
