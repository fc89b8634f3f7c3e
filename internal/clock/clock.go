// Package clock abstracts wall-clock time and repeating callbacks so the
// simulation can run on real timers in production and on a manually advanced
// clock in tests.
package clock

import (
	"sync"
	"time"
)

// MinInterval is the shortest repeat interval a timer accepts. Shorter values are raised to it.
const MinInterval = time.Millisecond

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	// Every calls fn every interval until the returned Timer is stopped.
	// Callbacks never overlap for a single timer.
	Every(interval time.Duration, fn func()) Timer
}

// Timer is a cancellable repeating callback.
type Timer interface {
	// Stop cancels future callbacks. It is safe to call more than once and from inside the callback.
	Stop()
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Every runs fn on its own goroutine driven by a time.Ticker.
func (RealClock) Every(interval time.Duration, fn func()) Timer {
	if interval < MinInterval {
		interval = MinInterval
	}

	t := &realTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// Stop may have raced with the tick
				select {
				case <-t.stop:
					return
				default:
				}
				fn()
			case <-t.stop:
				return
			}
		}
	}()

	return t
}

type realTimer struct {
	stop chan struct{}
	once sync.Once
}

func (t *realTimer) Stop() {
	t.once.Do(func() { close(t.stop) })
}
