package isodate

// Format returns t as YYYY-MM-DDTHH:mm:ss.sssZ in UTC.
// Instants outside [MinInstant, MaxInstant] are formatted the same way
// but cannot be parsed back.
func Format(t Instant) string {
	f := t.Fields()

	b := make([]byte, 0, len("0000-00-00T00:00:00.000Z"))
	b = appendInt(b, f.Year, 4)
	b = append(b, '-')
	b = appendInt(b, f.Month, 2)
	b = append(b, '-')
	b = appendInt(b, f.Day, 2)
	b = append(b, 'T')
	b = appendInt(b, f.Hour, 2)
	b = append(b, ':')
	b = appendInt(b, f.Minute, 2)
	b = append(b, ':')
	b = appendInt(b, f.Second, 2)
	b = append(b, '.')
	b = appendInt(b, f.Millisecond, 3)
	b = append(b, 'Z')
	return string(b)
}

// String implements fmt.Stringer.
func (t Instant) String() string {
	return Format(t)
}

// appendInt appends x zero padded to width digits.
func appendInt(b []byte, x int, width int) []byte {
	if x < 0 {
		b = append(b, '-')
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x >= 10 || width > 1 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
		width--
	}
	i--
	buf[i] = byte('0' + x)
	return append(b, buf[i:]...)
}
