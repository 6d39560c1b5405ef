package game

import (
	"fmt"
	"time"
)

const (
	// TickRate is the fixed gravity interval.
	TickRate = 500 * time.Millisecond
	// PollInterval bounds how long the input loop waits between checks.
	PollInterval = 50 * time.Millisecond
)

// Clock records when the last tick happened. It owns no goroutine; callers
// ask it whether a tick is due.
type Clock struct {
	Interval time.Duration
	LastTick time.Time
}

func NewClock(interval time.Duration, start time.Time) *Clock {
	return &Clock{Interval: interval, LastTick: start}
}

func (cl *Clock) String() string {
	return fmt.Sprintf("every %s, last %s", cl.Interval, cl.LastTick.Format("15:04:05.000"))
}

// Due reports whether at least one interval has passed since the last tick.
func (cl *Clock) Due(now time.Time) bool {
	return now.Sub(cl.LastTick) >= cl.Interval
}

// Reset marks now as the last tick.
func (cl *Clock) Reset(now time.Time) {
	cl.LastTick = now
}
