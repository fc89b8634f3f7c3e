package cooldown

import "time"

// Result is the outcome of a cooldown check.
type Result struct {
	Allowed   bool
	Remaining time.Duration
}

// TryAct reports whether an action last performed at lastActionTime may fire at now.
// When refused, Remaining is exactly delay - (now - lastActionTime).
// It is a pure function; callers record lastActionTime only when Allowed is true.
func TryAct(now, lastActionTime time.Time, delay time.Duration) Result {
	elapsed := now.Sub(lastActionTime)
	if elapsed < delay {
		return Result{Allowed: false, Remaining: delay - elapsed}
	}
	return Result{Allowed: true}
}
