package utils

import "time"

const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// DayOnly returns midnight of t's calendar day in loc
func DayOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days from `from` to `to` in loc, ignoring the
// time of day. The result is negative when to is before from.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	a := DayOnly(from, loc)
	b := DayOnly(to, loc)
	// Rebuild both days in UTC so DST shifts in loc cannot bend the division.
	// Unix seconds keep ranges beyond the ~292 years of a time.Duration exact.
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((bu.Unix() - au.Unix()) / secondsPerDay)
}

// RangesOverlap reports whether the half-open day ranges [aFrom, aTo) and
// [bFrom, bTo) share at least one night
func RangesOverlap(aFrom, aTo, bFrom, bTo time.Time, loc *time.Location) bool {
	return DaysBetween(bFrom, aTo, loc) > 0 && DaysBetween(aFrom, bTo, loc) > 0
}

// ParseDate accepts either a calendar date or an RFC 3339 timestamp
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
