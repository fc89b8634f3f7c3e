package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Timer callbacks run synchronously on the
// goroutine calling Advance, in due-time order (creation order on ties).
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers map[uint64]*fakeTimer
}

// NewFake creates a fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{
		now:    start,
		timers: make(map[uint64]*fakeTimer),
	}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Every registers a repeating callback first due at Now()+interval.
func (f *Fake) Every(interval time.Duration, fn func()) Timer {
	if interval < MinInterval {
		interval = MinInterval
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock:    f,
		id:       f.seq,
		interval: interval,
		next:     f.now.Add(interval),
		fn:       fn,
	}
	f.timers[t.id] = t
	return t
}

// Advance moves time forward by d, firing every callback that becomes due.
// The lock is released while a callback runs, so callbacks may stop timers or create new ones.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)

	for {
		due := f.nextDue(target)
		if due == nil {
			break
		}
		f.now = due.next
		due.next = due.next.Add(due.interval)
		fn := due.fn

		f.mu.Unlock()
		fn()
		f.mu.Lock()
	}

	f.now = target
	f.mu.Unlock()
}

// ActiveTimers returns the number of timers that have not been stopped.
func (f *Fake) ActiveTimers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// nextDue returns the earliest live timer due at or before target. Caller holds f.mu.
func (f *Fake) nextDue(target time.Time) *fakeTimer {
	var best *fakeTimer
	for _, t := range f.timers {
		if t.next.After(target) {
			continue
		}
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && t.id < best.id) {
			best = t
		}
	}
	return best
}

type fakeTimer struct {
	clock    *Fake
	id       uint64
	interval time.Duration
	next     time.Time
	fn       func()
}

func (t *fakeTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	delete(t.clock.timers, t.id)
}
