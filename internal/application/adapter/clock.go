package adapter

import "time"

// Clock abstracts the device's local clock so the calendar-day boundary logic
// is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real local clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
