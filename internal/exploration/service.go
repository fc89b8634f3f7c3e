// Package exploration runs manual exploration and the autonomous production ticker.
package exploration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/cooldown"
	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/logger"
	"github.com/osse101/MartianPotato_Go/internal/metrics"
	"github.com/osse101/MartianPotato_Go/internal/notify"
	"github.com/osse101/MartianPotato_Go/internal/reward"
)

// ResourceSink is the part of the resource store exploration writes to.
type ResourceSink interface {
	AddReward(b domain.Bundle) domain.Bundle
	ExplorationMultiplier() float64
}

// Service defines exploration behavior
type Service interface {
	// Explore performs a manual exploration gated by the exploration cooldown.
	// A refusal is reported in the result, not as an error.
	Explore(ctx context.Context) (domain.ExploreResult, error)
	// SetRate stores the autonomous rate and reconciles the ticker.
	SetRate(ctx context.Context, rate float64) error
	// Rate returns the current autonomous rate.
	Rate() float64
	// Reconcile cancels any running ticker and starts a fresh one iff rate > 0.
	Reconcile(ctx context.Context)
	// State reports the rate and whether the ticker is running.
	State() domain.ExplorationState
	// Stop cancels the ticker without changing the rate.
	Stop(ctx context.Context)
}

type service struct {
	clk       clock.Clock
	store     ResourceSink
	rewards   *reward.Generator
	cooldowns *cooldown.Tracker
	display   notify.Display
	notifier  notify.Notifier
	interval  time.Duration

	mu         sync.Mutex
	rate       float64
	timer      clock.Timer
	generation uint64
}

// NewService creates a new exploration service. The ticker starts Idle.
func NewService(
	clk clock.Clock,
	store ResourceSink,
	rewards *reward.Generator,
	cooldowns *cooldown.Tracker,
	display notify.Display,
	notifier notify.Notifier,
	cfg Config,
) Service {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = domain.AutonomousExplorationPeriod
	}
	return &service{
		clk:       clk,
		store:     store,
		rewards:   rewards,
		cooldowns: cooldowns,
		display:   display,
		notifier:  notifier,
		interval:  interval,
	}
}

func (s *service) Explore(ctx context.Context) (domain.ExploreResult, error) {
	log := logger.FromContext(ctx)

	var credited domain.Bundle
	err := s.cooldowns.Enforce(ctx, domain.ActionExplore, func() error {
		roll := s.rewards.RollManual(s.store.ExplorationMultiplier())
		credited = s.store.AddReward(roll)
		return nil
	})

	var onCooldown cooldown.ErrOnCooldown
	if errors.As(err, &onCooldown) {
		metrics.Explorations.WithLabelValues(metrics.KindManual, metrics.OutcomeRefused).Inc()
		log.Debug(LogMsgExploreRefused, "remaining", onCooldown.Remaining)
		s.notifier.ShowNotice(ctx, NoticeTitleExploration,
			fmt.Sprintf(MsgFmtExploreWait, onCooldown.WaitSeconds()), domain.SeverityWarning)
		return domain.ExploreResult{Allowed: false, Remaining: onCooldown.Remaining}, nil
	}
	if err != nil {
		return domain.ExploreResult{}, fmt.Errorf("failed to explore: %w", err)
	}

	metrics.Explorations.WithLabelValues(metrics.KindManual, metrics.OutcomeAllowed).Inc()
	metrics.RecordGathered(credited)
	log.Info(LogMsgExploreSucceeded,
		"water", credited.Water, "nutrients", credited.Nutrients, "ice", credited.Ice)

	s.notifier.ShowNotice(ctx, NoticeTitleExploration, FormatReward(credited), domain.SeveritySuccess)
	s.display.NotifyDisplayChanged(ctx)

	return domain.ExploreResult{Allowed: true, Reward: credited}, nil
}

func (s *service) SetRate(ctx context.Context, rate float64) error {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRate, rate)
	}

	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgRateChanged, "rate", rate)
	s.Reconcile(ctx)
	return nil
}

func (s *service) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

func (s *service) Reconcile(ctx context.Context) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	wasRunning := s.stopLocked()
	if s.rate <= 0 {
		s.mu.Unlock()
		if wasRunning {
			log.Info(LogMsgTickerStopped)
		}
		return
	}

	s.generation++
	gen := s.generation
	s.timer = s.clk.Every(s.interval, func() { s.tick(gen) })
	rate := s.rate
	s.mu.Unlock()

	log.Info(LogMsgTickerStarted, "rate", rate, "interval", s.interval)
}

func (s *service) State() domain.ExplorationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.ExplorationState{Rate: s.rate, Ticker: domain.TickerIdle}
	if s.timer != nil {
		state.Ticker = domain.TickerRunning
	}
	return state
}

func (s *service) Stop(ctx context.Context) {
	s.mu.Lock()
	wasRunning := s.stopLocked()
	s.mu.Unlock()

	if wasRunning {
		logger.FromContext(ctx).Info(LogMsgTickerStopped)
	}
}

// stopLocked cancels the running timer and invalidates its pending ticks. Caller holds s.mu.
func (s *service) stopLocked() bool {
	s.generation++
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	return true
}

// tick is one autonomous production step. The reward is credited under s.mu
// so a tick racing with Stop or Reconcile cannot land after the generation moved on.
func (s *service) tick(gen uint64) {
	ctx := context.Background()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgStaleTick, "generation", gen)
		return
	}
	roll := s.rewards.RollAutonomous(s.rate, s.store.ExplorationMultiplier())
	credited := s.store.AddReward(roll)
	s.mu.Unlock()

	metrics.Explorations.WithLabelValues(metrics.KindAutonomous, metrics.OutcomeAllowed).Inc()
	metrics.RecordGathered(credited)

	s.display.NotifyDisplayChanged(ctx)
}

// FormatReward renders a credited bundle for a notice.
func FormatReward(b domain.Bundle) string {
	return fmt.Sprintf(MsgFmtExploreFound,
		humanize.FtoaWithDigits(b.Water, RewardDigits),
		humanize.FtoaWithDigits(b.Nutrients, RewardDigits),
		humanize.FtoaWithDigits(b.Ice, RewardDigits),
	)
}
