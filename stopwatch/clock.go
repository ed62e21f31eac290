package stopwatch

import "time"

// Clock is the time source the stopwatch samples.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns time.Now, whose monotonic reading is used by Sub.
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the default Clock.
var SystemClock Clock = systemClock{}
