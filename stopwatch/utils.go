package stopwatch

import (
	"fmt"
)

// Elapsed holds the display fields of a millisecond count. Milliseconds is
// shown at hundredths precision.
type Elapsed struct {
	Hours        string
	Minutes      string
	Seconds      string
	Milliseconds string
}

// FormatElapsed splits a millisecond count into zero-padded display fields.
func FormatElapsed(ms int64) Elapsed {
	if ms < 0 {
		ms = 0
	}
	return Elapsed{
		Hours:        fmt.Sprintf("%02d", ms/3_600_000),
		Minutes:      fmt.Sprintf("%02d", ms/60_000%60),
		Seconds:      fmt.Sprintf("%02d", ms/1000%60),
		Milliseconds: fmt.Sprintf("%02d", ms%1000/10),
	}
}

// HasHours reports whether the hour field is shown.
func (e Elapsed) HasHours() bool {
	return e.Hours != "00"
}

// Clock renders mm:ss.cc, with a leading hh: once an hour has passed.
func (e Elapsed) Clock() string {
	if e.HasHours() {
		return fmt.Sprintf("%s:%s:%s.%s", e.Hours, e.Minutes, e.Seconds, e.Milliseconds)
	}
	return fmt.Sprintf("%s:%s.%s", e.Minutes, e.Seconds, e.Milliseconds)
}

// LapLabel renders a lap id as #01.
func LapLabel(id int) string {
	return fmt.Sprintf("#%02d", id)
}
