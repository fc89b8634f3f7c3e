package cooldown

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Tracker remembers when each action last succeeded and enforces its cooldown.
type Tracker struct {
	mu       sync.Mutex
	clk      clock.Clock
	config   Config
	lastUsed map[string]time.Time
}

// NewTracker creates a tracker reading time from clk.
func NewTracker(clk clock.Clock, config Config) *Tracker {
	overrides := make(map[string]time.Duration, len(config.Cooldowns))
	for k, v := range config.Cooldowns {
		overrides[k] = v
	}
	config.Cooldowns = overrides

	return &Tracker{
		clk:      clk,
		config:   config,
		lastUsed: make(map[string]time.Time),
	}
}

// Check reports whether action may run now without recording anything.
func (t *Tracker) Check(action string) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.checkLocked(action, t.clk.Now())
}

// Enforce atomically checks the cooldown and runs fn if allowed.
// The last-used time is recorded only when fn returns nil.
// fn runs with the tracker locked and must not call back into the tracker.
func (t *Tracker) Enforce(ctx context.Context, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clk.Now()

	if t.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action)
	} else if res := t.checkLocked(action, now); !res.Allowed {
		log.Debug(LogMsgCooldownRejected, "action", action, "remaining", res.Remaining)
		return ErrOnCooldown{Action: action, Remaining: res.Remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	t.lastUsed[action] = now
	log.Debug(LogMsgCooldownEnforced, "action", action)
	return nil
}

// LastUsed returns when action last succeeded.
func (t *Tracker) LastUsed(action string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	last, ok := t.lastUsed[action]
	return last, ok
}

// Duration returns the cooldown currently applied to action.
func (t *Tracker) Duration(action string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.config.GetCooldownDuration(action)
}

// SetDuration replaces the cooldown for action, e.g. when a planting upgrade shortens the delay.
func (t *Tracker) SetDuration(ctx context.Context, action string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.config.Cooldowns[action] = d
	logger.FromContext(ctx).Debug(LogMsgCooldownDurationChanged, "action", action, "duration", d)
}

func (t *Tracker) checkLocked(action string, now time.Time) Result {
	if t.config.DevMode {
		return Result{Allowed: true}
	}
	last, ok := t.lastUsed[action]
	if !ok {
		// Never used - not on cooldown
		return Result{Allowed: true}
	}
	return TryAct(now, last, t.config.GetCooldownDuration(action))
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	total := int(math.Ceil(e.Remaining.Seconds()))
	minutes := total / secondsPerMinute
	seconds := total % secondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// WaitSeconds is the remaining wait rounded up to whole seconds, as shown to players.
func (e ErrOnCooldown) WaitSeconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}
