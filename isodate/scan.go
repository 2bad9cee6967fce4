package isodate

// Fields holds the raw calendar fields of a date string as written.
// Values may exceed their natural range (second 99, day 32); Instant carries them.
// Missing fields default to month 1, day 1 and zero for the rest.
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int

	// OffsetMinutes is the signed UTC offset of the local time, 0 for UTC.
	OffsetMinutes int
}

// Tokenize splits s into its raw fields without normalizing them.
//
// Accepted shapes are
//
//	YYYY[-]MM[-]DD
//	YYYY[-]MM[-]DDTHH[[:]mm[[:]ss[.f...]]][Z|±HH|±HHMM|±HH:MM]
//
// where every hyphen and colon may be omitted independently of the others.
func Tokenize(s string) (Fields, error) {
	f := Fields{Month: 1, Day: 1}
	rest := s

	if !getDigits(&rest, 4, &f.Year) {
		return Fields{}, malformed(s, rest, "expected 4-digit year")
	}
	skip(&rest, '-')
	if !getDigits(&rest, 2, &f.Month) {
		return Fields{}, malformed(s, rest, "expected 2-digit month")
	}
	skip(&rest, '-')
	if !getDigits(&rest, 2, &f.Day) {
		return Fields{}, malformed(s, rest, "expected 2-digit day")
	}

	if rest == "" {
		return f, nil
	}
	if !skip(&rest, 'T') {
		return Fields{}, malformed(s, rest, "expected 'T'")
	}

	if !getDigits(&rest, 2, &f.Hour) {
		return Fields{}, malformed(s, rest, "expected 2-digit hour")
	}
	if scanTimeField(&rest, &f.Minute) {
		if scanTimeField(&rest, &f.Second) {
			if skip(&rest, '.') && !getMilliseconds(&rest, &f.Millisecond) {
				return Fields{}, malformed(s, rest, "expected fraction digits")
			}
		}
	}

	if rest == "" {
		return f, nil
	}
	if !getOffset(&rest, &f.OffsetMinutes) {
		return Fields{}, malformed(s, rest, "expected time or UTC offset")
	}
	if rest != "" {
		return Fields{}, malformed(s, rest, "unexpected trailing characters")
	}
	return f, nil
}

// scanTimeField reads an optional [:]NN component. A colon not followed by
// two digits leaves the input untouched so that the caller rejects it.
func scanTimeField(sp *string, val *int) bool {
	s := *sp
	skip(&s, ':')
	if !getDigits(&s, 2, val) {
		return false
	}
	*sp = s
	return true
}

// getOffset reads Z, ±HH, ±HHMM or ±HH:MM. Hours and minutes are not range checked.
func getOffset(sp *string, val *int) bool {
	s := *sp
	if skip(&s, 'Z') {
		*sp, *val = s, 0
		return true
	}

	sign := 1
	switch {
	case skip(&s, '+'):
	case skip(&s, '-'):
		sign = -1
	default:
		return false
	}

	var hours, minutes int
	if !getDigits(&s, 2, &hours) {
		return false
	}
	if s != "" {
		skip(&s, ':')
		if !getDigits(&s, 2, &minutes) {
			return false
		}
	}
	*sp, *val = s, sign*(hours*60+minutes)
	return true
}

// getMilliseconds reads one or more fraction digits. The first three digits are
// milliseconds and the fourth rounds half up; the rest are consumed and ignored.
func getMilliseconds(sp *string, val *int) bool {
	s := *sp
	mul, v, p := 100, 0, 0
	for ; p < len(s) && isDigit(s[p]); p++ {
		switch {
		case p < 3:
			v += int(s[p]-'0') * mul
			mul /= 10
		case p == 3 && s[p] >= '5':
			v++
		}
	}
	if p == 0 {
		return false
	}
	*sp, *val = s[p:], v
	return true
}

// getDigits reads exactly n decimal digits.
func getDigits(sp *string, n int, val *int) bool {
	s := *sp
	if len(s) < n {
		return false
	}
	var v int
	for p := 0; p < n; p++ {
		if !isDigit(s[p]) {
			return false
		}
		v = v*10 + int(s[p]-'0')
	}
	*sp, *val = s[n:], v
	return true
}

func skip(sp *string, c byte) bool {
	s := *sp
	if len(s) > 0 && s[0] == c {
		*sp = s[1:]
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
