package mock

import (
	"sync"
	"time"
)

// Time is a frozen clock for tests. It satisfies the application's Clock
// port so date-sensitive transitions run against a pinned day.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

func NewTime() *Time {
	return &Time{current: time.Now()}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
