// Package schedule provides cancellable delayed callbacks.
//
// Everything that animates (the demo player, the chat simulator, the carousel)
// suspends only through a Scheduler, so tests can drive it with Manual.
package schedule

import (
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops the callback if it has not started yet and reports whether
	// it did so. Calling Cancel more than once is safe.
	Cancel() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
	Now() time.Time
}

// Clock is the wall-clock Scheduler backed by time.AfterFunc.
type Clock struct{}

// NewClock returns a wall-clock scheduler.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc runs f on its own goroutine once d has elapsed.
func (c *Clock) AfterFunc(d time.Duration, f func()) Task {
	return &timerTask{timer: time.AfterFunc(d, f)}
}

// Now returns the current wall-clock time.
func (c *Clock) Now() time.Time {
	return time.Now()
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() bool {
	return t.timer.Stop()
}
