// Package isodate parses and formats ISODate strings as accepted by the MongoDB shell.
//
// Parsing is lenient in two ways. Delimiters inside the date and the time may be
// omitted ("20170916T183725Z"), and fields may overflow their natural range: second 60
// is the next minute, day 0 is the last day of the previous month and month 13 is
// January of the next year. Dates use the proleptic Gregorian calendar and must fall
// within years 0000 through 9999 once normalized.
package isodate

import (
	"fmt"
	"time"

	"github.com/ngrash/go-isodate/internal/unixtime"
)

// Instant is a point in time as milliseconds since 1970-01-01T00:00:00Z.
type Instant int64

const (
	// MinInstant is 0000-01-01T00:00:00.000Z.
	MinInstant Instant = -62167219200000
	// MaxInstant is 9999-12-31T23:59:59.999Z.
	MaxInstant Instant = 253402300799999
)

// Parse parses s and returns the normalized instant it denotes.
//
// The returned error is a *MalformedDateStringError if s has no accepted shape,
// or a *DateOutOfRangeError if it normalizes outside [MinInstant, MaxInstant].
func Parse(s string) (Instant, error) {
	f, err := Tokenize(s)
	if err != nil {
		return 0, err
	}
	t, err := f.Instant()
	if err != nil {
		if e, ok := err.(*DateOutOfRangeError); ok {
			e.Input = s
		}
		return 0, err
	}
	return t, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Instant {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// fieldLimits bounds the magnitude of each field, in Fields order, so that
// Instant sums them exactly in int64. Each limit is about 1e10 days of its unit,
// far outside the years 0000 through 9999.
var fieldLimits = [...]int64{
	1e7,    // Year
	1e8,    // Month
	1e10,   // Day
	24e10,  // Hour
	144e11, // Minute
	864e12, // Second
	864e15, // Millisecond
	144e11, // OffsetMinutes
}

// Instant normalizes the fields and converts them to an instant in UTC.
//
// Overflow is resolved arithmetically: the month is carried into the year first,
// the day is then counted from the first of that month, and time of day and
// offset are added as flat milliseconds.
//
// A field beyond its limit is always out of range. It is clamped to the limit
// only to compute the year reported by the error.
func (f Fields) Instant() (Instant, error) {
	v := [...]int64{
		int64(f.Year),
		int64(f.Month),
		int64(f.Day),
		int64(f.Hour),
		int64(f.Minute),
		int64(f.Second),
		int64(f.Millisecond),
		int64(f.OffsetMinutes),
	}
	withinLimits := true
	for i, limit := range fieldLimits {
		switch {
		case v[i] > limit:
			v[i], withinLimits = limit, false
		case v[i] < -limit:
			v[i], withinLimits = -limit, false
		}
	}

	months := v[1] - 1
	yearCarry := unixtime.FloorDiv(months, 12)
	year := int(v[0] + yearCarry)
	month := int(months-yearCarry*12) + 1

	ms := unixtime.FromDateTime(year, month, v[2], v[3], v[4], v[5], v[6])
	ms -= v[7] * 60 * 1000

	t := Instant(ms)
	if !withinLimits {
		return 0, &DateOutOfRangeError{Year: t.year()}
	}
	if err := t.check(); err != nil {
		return 0, err
	}
	return t, nil
}

// Valid reports whether t lies within [MinInstant, MaxInstant].
func (t Instant) Valid() bool {
	return t >= MinInstant && t <= MaxInstant
}

func (t Instant) check() error {
	if t.Valid() {
		return nil
	}
	return &DateOutOfRangeError{Year: t.year()}
}

// year returns the proleptic year of t, which need not be in range.
func (t Instant) year() int {
	year, _, _ := unixtime.CivilFromDays(unixtime.FloorDiv(int64(t), unixtime.MillisPerDay))
	return year
}

// Fields returns the UTC calendar fields of t.
func (t Instant) Fields() Fields {
	var f Fields
	f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond = unixtime.ToDateTime(int64(t))
	return f
}

// Time returns t as a time.Time in UTC.
func (t Instant) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// FromTime returns the instant of tm truncated to milliseconds.
func FromTime(tm time.Time) (Instant, error) {
	t := Instant(tm.UnixMilli())
	if err := t.check(); err != nil {
		return 0, err
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Instant) MarshalText() ([]byte, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return []byte(Format(t)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Any form accepted by Parse is accepted.
func (t *Instant) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return fmt.Errorf("isodate: %w", err)
	}
	*t = v
	return nil
}
