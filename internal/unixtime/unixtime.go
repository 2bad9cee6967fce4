// Package unixtime converts proleptic Gregorian calendar dates to and from
// milliseconds since the Unix epoch (1970-01-01T00:00:00Z).
//
// Leap seconds are ignored. The package does not depend on time.Location so
// that years before 0001 behave the same as any other year.
package unixtime

// The constants were derived from time.go in the Go standard library's time package.
const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	MillisPerDay    = 24 * millisPerHour

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// absoluteZeroYear is one year after a multiple of 400, so every year
	// counted from it starts a fresh 4, 100 and 400 year cycle.
	absoluteZeroYear       = -292277022399
	internalYear           = 1
	absoluteToInternalDays = (absoluteZeroYear - internalYear) * 365.2425
	unixToInternalDays     = 1969*365 + 1969/4 - 1969/100 + 1969/400
	absoluteToUnixDays     = absoluteToInternalDays - unixToInternalDays
)

// daysBefore[m] counts the days in a non-leap year before month m+1.
var daysBefore = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysFromCivil returns the number of days between 1970-01-01 and the given date.
// Month must be in [1, 12]. Day may lie outside the month: day 0 is the last day
// of the previous month and day 32 of January is the first of February.
func DaysFromCivil(year, month, day int) int64 {
	d := int64(daysSinceEpoch(year)) + int64(daysBefore[month-1]) + int64(day-1)
	if month > 2 && IsLeapYear(year) {
		d++ // +leap year
	}
	return d + absoluteToUnixDays
}

// CivilFromDays is the inverse of DaysFromCivil for in-range dates.
func CivilFromDays(days int64) (year, month, day int) {
	d := uint64(days - absoluteToUnixDays)

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday := int(d)

	if IsLeapYear(year) {
		switch {
		case yday > 31+29-1:
			yday-- // skip the leap day
		case yday == 31+29-1:
			return year, 2, 29
		}
	}

	month = yday / 31
	end := daysBefore[month+1]
	var begin int
	if yday >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}
	return year, month + 1, yday - begin + 1
}

// FromDateTime converts a given date and time to milliseconds since 1970-01-01T00:00:00Z.
// Month must be in [1, 12]. Day and time of day fields are not range checked;
// overflow carries into the day. The caller must keep the sum within int64.
func FromDateTime(year, month int, day, hour, minute, second, millisecond int64) int64 {
	return (DaysFromCivil(year, month, 1)+day-1)*MillisPerDay +
		hour*millisPerHour +
		minute*millisPerMinute +
		second*millisPerSecond +
		millisecond
}

// ToDateTime splits milliseconds since 1970-01-01T00:00:00Z into UTC calendar fields.
func ToDateTime(ms int64) (year, month, day, hour, minute, second, millisecond int) {
	days := FloorDiv(ms, MillisPerDay)
	rest := int(ms - days*MillisPerDay)

	year, month, day = CivilFromDays(days)
	hour = rest / millisPerHour
	rest -= hour * millisPerHour
	minute = rest / millisPerMinute
	rest -= minute * millisPerMinute
	second = rest / millisPerSecond
	millisecond = rest - second*millisPerSecond
	return
}

// FloorDiv divides a by b rounding towards negative infinity. b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
