// Package planting runs the planting delay tiers, manual planting and the
// repeatable auto-planter units.
package planting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/cooldown"
	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/logger"
	"github.com/osse101/MartianPotato_Go/internal/metrics"
	"github.com/osse101/MartianPotato_Go/internal/notify"
)

// ResourceStore is the part of the resource store planting needs.
type ResourceStore interface {
	// ConsumeAndMint is the consumption policy for one planting: it deducts one
	// bundle and credits n potatoes atomically, or reports false and changes nothing.
	ConsumeAndMint(n int64) bool
	CanConsume() bool
	SpendPotatoes(n int64) (bool, int64)
	Snapshot() domain.Resources
}

// Service defines planting behavior
type Service interface {
	// Purchase buys the upgrade at index. Insufficient potatoes is reported in the result.
	Purchase(ctx context.Context, index int) (domain.PurchaseResult, error)
	// Plant performs one manual planting gated by the current planting delay.
	Plant(ctx context.Context) (domain.PlantResult, error)
	// ReactivateDormant restarts dormant units when one planting is affordable.
	// It returns how many units were restarted.
	ReactivateDormant(ctx context.Context) int
	// AvailableUpgrades lists the upgrades currently offered, with prices.
	AvailableUpgrades() []domain.UpgradeOffer
	// Upgrades returns the full ordered upgrade list.
	Upgrades() []domain.Upgrade
	State() domain.PlantingState
	// ValidateTier reports ErrInvalidSnapshot when tier is not NoTier or a linear upgrade index.
	ValidateTier(tier int) error
	// Restore replaces tier and units from a snapshot and starts every unit.
	Restore(ctx context.Context, tier int, unitCosts []int64) error
	// Stop cancels every unit timer. Units are kept.
	Stop(ctx context.Context)
}

type unit struct {
	domain.AutoPlanter
	timer clock.Timer
	delay time.Duration
	gen   uint64
}

type service struct {
	clk       clock.Clock
	store     ResourceStore
	cooldowns *cooldown.Tracker
	display   notify.Display
	notifier  notify.Notifier
	upgrades  []domain.Upgrade
	baseDelay time.Duration

	mu    sync.Mutex
	tier  int
	delay time.Duration
	units []*unit
}

// NewService creates a planting service at tier -1 with no units.
func NewService(
	clk clock.Clock,
	store ResourceStore,
	cooldowns *cooldown.Tracker,
	display notify.Display,
	notifier notify.Notifier,
	cfg Config,
) Service {
	cfg = cfg.withDefaults()
	s := &service{
		clk:       clk,
		store:     store,
		cooldowns: cooldowns,
		display:   display,
		notifier:  notifier,
		upgrades:  cfg.Upgrades,
		baseDelay: cfg.BaseDelay,
		tier:      NoTier,
		delay:     cfg.BaseDelay,
	}
	cooldowns.SetDuration(context.Background(), domain.ActionPlant, cfg.BaseDelay)
	return s
}

func (s *service) Purchase(ctx context.Context, index int) (domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	if index < 0 || index >= len(s.upgrades) {
		return domain.PurchaseResult{}, fmt.Errorf("%w: index %d", domain.ErrUnknownUpgrade, index)
	}
	upgrade := s.upgrades[index]

	s.mu.Lock()
	var (
		result domain.PurchaseResult
		err    error
	)
	if upgrade.Repeatable() {
		result = s.buyUnitLocked(ctx, upgrade)
	} else {
		result, err = s.buyTierLocked(ctx, upgrade)
	}
	var nextCost int64
	if result.Purchased && upgrade.Repeatable() {
		nextCost = AutoPlanterCost(upgrade.Cost, len(s.units))
	}
	s.mu.Unlock()

	if err != nil {
		return domain.PurchaseResult{}, err
	}
	if !result.Purchased {
		log.Debug(LogMsgUpgradeUnaffordable, "upgrade", upgrade.Key, "price", result.Price, "potatoes", result.Potatoes)
		return result, nil
	}

	metrics.UpgradesPurchased.WithLabelValues(upgrade.Key).Inc()
	log.Info(LogMsgUpgradePurchased, "upgrade", upgrade.Key, "price", result.Price, "tier", result.Tier)

	if upgrade.Repeatable() {
		s.notifier.ShowNotice(ctx, NoticeTitleUpgrade,
			fmt.Sprintf(MsgFmtAutoPlanterBought, humanize.Comma(int64(result.OwnedCount)), humanize.Comma(nextCost)),
			domain.SeverityAchievement)
	} else {
		s.notifier.ShowNotice(ctx, NoticeTitleUpgrade,
			fmt.Sprintf(MsgFmtUpgradeBought, upgrade.Name, result.NewDelay),
			domain.SeverityAchievement)
	}
	s.display.NotifyDisplayChanged(ctx)

	return result, nil
}

// buyTierLocked buys a linear tier. Caller holds s.mu.
func (s *service) buyTierLocked(ctx context.Context, upgrade domain.Upgrade) (domain.PurchaseResult, error) {
	if upgrade.Index <= s.tier {
		return domain.PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrUpgradeOwned, upgrade.Key)
	}

	result := domain.PurchaseResult{
		Upgrade:    upgrade,
		Price:      upgrade.Cost,
		Tier:       s.tier,
		OwnedCount: len(s.units),
	}

	ok, balance := s.store.SpendPotatoes(upgrade.Cost)
	result.Potatoes = balance
	if !ok {
		return result, nil
	}

	s.tier = upgrade.Index
	s.setDelayLocked(ctx, upgrade.PlantingDelay)

	result.Purchased = true
	result.Tier = s.tier
	result.NewDelay = s.delay
	return result, nil
}

// buyUnitLocked buys one auto-planter and starts it. Caller holds s.mu.
func (s *service) buyUnitLocked(ctx context.Context, upgrade domain.Upgrade) domain.PurchaseResult {
	price := AutoPlanterCost(upgrade.Cost, len(s.units))
	result := domain.PurchaseResult{
		Upgrade:    upgrade,
		Price:      price,
		Tier:       s.tier,
		OwnedCount: len(s.units),
	}

	ok, balance := s.store.SpendPotatoes(price)
	result.Potatoes = balance
	if !ok {
		return result
	}

	u := &unit{AutoPlanter: domain.AutoPlanter{
		ID:             uuid.New().String(),
		CostAtPurchase: price,
		PurchasedAt:    s.clk.Now(),
	}}
	s.units = append(s.units, u)
	s.startLocked(ctx, u)

	result.Purchased = true
	result.UnitID = u.ID
	result.OwnedCount = len(s.units)
	return result
}

// setDelayLocked applies a new planting delay to manual planting and running units. Caller holds s.mu.
func (s *service) setDelayLocked(ctx context.Context, d time.Duration) {
	s.delay = d
	s.cooldowns.SetDuration(ctx, domain.ActionPlant, d)
	for _, u := range s.units {
		if u.timer != nil && u.delay != d {
			s.startLocked(ctx, u)
		}
	}
}

// startLocked (re)starts the timer of u at the current delay. Caller holds s.mu.
func (s *service) startLocked(ctx context.Context, u *unit) {
	if u.timer != nil {
		u.timer.Stop()
	}
	u.gen++
	gen := u.gen
	u.delay = s.delay
	u.timer = s.clk.Every(s.delay, func() { s.tick(u, gen) })
	u.Active = true
	logger.FromContext(ctx).Debug(LogMsgUnitStarted, "unit_id", u.ID, "delay", s.delay)
}

// stopLocked cancels the timer of u and invalidates its pending ticks. Caller holds s.mu.
func (s *service) stopLocked(u *unit) {
	u.gen++
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	u.Active = false
}

// tick is one production attempt of a unit.
func (s *service) tick(u *unit, gen uint64) {
	ctx := context.Background()

	s.mu.Lock()
	if u.gen != gen {
		s.mu.Unlock()
		return
	}
	planted := s.store.ConsumeAndMint(1)
	if !planted {
		s.stopLocked(u)
	}
	s.mu.Unlock()

	if planted {
		metrics.PotatoesMinted.WithLabelValues(metrics.SourcePlanter).Inc()
		s.display.NotifyDisplayChanged(ctx)
		return
	}

	metrics.PlantersStalled.Inc()
	logger.FromContext(ctx).Info(LogMsgUnitDormant, "unit_id", u.ID)
	s.notifier.ShowNotice(ctx, NoticeTitlePlanting, MsgPlanterStalled, domain.SeveritySetback)
	s.display.NotifyDisplayChanged(ctx)
}

var errNotEnoughResources = errors.New("not enough resources to plant")

func (s *service) Plant(ctx context.Context) (domain.PlantResult, error) {
	log := logger.FromContext(ctx)

	err := s.cooldowns.Enforce(ctx, domain.ActionPlant, func() error {
		if !s.store.ConsumeAndMint(1) {
			return errNotEnoughResources
		}
		return nil
	})

	var onCooldown cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &onCooldown):
		log.Debug(LogMsgPlantRefused, "remaining", onCooldown.Remaining)
		s.notifier.ShowNotice(ctx, NoticeTitlePlanting,
			fmt.Sprintf(MsgFmtPlantWait, onCooldown.WaitSeconds()), domain.SeverityWarning)
		return domain.PlantResult{Allowed: false, Remaining: onCooldown.Remaining, Potatoes: s.store.Snapshot().Potatoes}, nil
	case errors.Is(err, errNotEnoughResources):
		log.Debug(LogMsgPlantShort)
		s.notifier.ShowNotice(ctx, NoticeTitlePlanting, MsgNotEnoughToPlant, domain.SeverityWarning)
		return domain.PlantResult{Allowed: true, Planted: false, Potatoes: s.store.Snapshot().Potatoes}, nil
	case err != nil:
		return domain.PlantResult{}, fmt.Errorf("failed to plant: %w", err)
	}

	metrics.PotatoesMinted.WithLabelValues(metrics.SourceManual).Inc()
	s.display.NotifyDisplayChanged(ctx)

	return domain.PlantResult{Allowed: true, Planted: true, Potatoes: s.store.Snapshot().Potatoes}, nil
}

func (s *service) ReactivateDormant(ctx context.Context) int {
	s.mu.Lock()
	restarted := 0
	if s.store.CanConsume() {
		for _, u := range s.units {
			if u.timer == nil {
				s.startLocked(ctx, u)
				restarted++
			}
		}
	}
	// Running units also pick up a changed delay
	for _, u := range s.units {
		if u.timer != nil && u.delay != s.delay {
			s.startLocked(ctx, u)
		}
	}
	s.mu.Unlock()

	if restarted == 0 {
		return 0
	}

	logger.FromContext(ctx).Info(LogMsgUnitsRestarted, "count", restarted)
	s.notifier.ShowNotice(ctx, NoticeTitlePlanting,
		fmt.Sprintf(MsgFmtPlantersRestarted, humanize.Comma(int64(restarted))), domain.SeverityInfo)
	s.display.NotifyDisplayChanged(ctx)
	return restarted
}

func (s *service) AvailableUpgrades() []domain.UpgradeOffer {
	potatoes := s.store.Snapshot().Potatoes

	s.mu.Lock()
	defer s.mu.Unlock()

	offers := make([]domain.UpgradeOffer, 0, len(s.upgrades))
	for _, u := range s.upgrades {
		price := u.Cost
		if u.Repeatable() {
			// Shown once owned, or while it is the next step after the current tier
			if len(s.units) == 0 && s.tier != u.Index-1 {
				continue
			}
			price = AutoPlanterCost(u.Cost, len(s.units))
		} else if u.Index <= s.tier {
			continue
		}
		offers = append(offers, domain.UpgradeOffer{
			Upgrade:    u,
			Price:      price,
			Affordable: potatoes >= price,
		})
	}
	return offers
}

func (s *service) Upgrades() []domain.Upgrade {
	out := make([]domain.Upgrade, len(s.upgrades))
	copy(out, s.upgrades)
	return out
}

func (s *service) State() domain.PlantingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.PlantingState{
		Tier:          s.tier,
		PlantingDelay: s.delay,
		AutoPlanters:  make([]domain.AutoPlanter, 0, len(s.units)),
		NextUnitCost:  AutoPlanterCost(s.autoPlanterBase(), len(s.units)),
	}
	for _, u := range s.units {
		state.AutoPlanters = append(state.AutoPlanters, u.AutoPlanter)
	}
	return state
}

func (s *service) ValidateTier(tier int) error {
	if tier == NoTier {
		return nil
	}
	if tier < 0 || tier >= len(s.upgrades) || s.upgrades[tier].Repeatable() {
		return fmt.Errorf("%w: tier %d", domain.ErrInvalidSnapshot, tier)
	}
	return nil
}

func (s *service) Restore(ctx context.Context, tier int, unitCosts []int64) error {
	if err := s.ValidateTier(tier); err != nil {
		return err
	}
	delay := s.baseDelay
	if tier != NoTier {
		delay = s.upgrades[tier].PlantingDelay
	}

	s.mu.Lock()
	for _, u := range s.units {
		s.stopLocked(u)
	}
	s.tier = tier
	s.delay = delay
	s.cooldowns.SetDuration(ctx, domain.ActionPlant, delay)

	now := s.clk.Now()
	s.units = make([]*unit, 0, len(unitCosts))
	for _, cost := range unitCosts {
		u := &unit{AutoPlanter: domain.AutoPlanter{
			ID:             uuid.New().String(),
			CostAtPurchase: cost,
			PurchasedAt:    now,
		}}
		s.units = append(s.units, u)
		s.startLocked(ctx, u)
	}
	count := len(s.units)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgStateRestored, "tier", tier, "units", count)
	s.display.NotifyDisplayChanged(ctx)
	return nil
}

func (s *service) Stop(ctx context.Context) {
	s.mu.Lock()
	for _, u := range s.units {
		s.stopLocked(u)
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgStopped)
}

// autoPlanterBase returns the base cost of the repeatable upgrade. Caller holds s.mu.
func (s *service) autoPlanterBase() int64 {
	for _, u := range s.upgrades {
		if u.Repeatable() {
			return u.Cost
		}
	}
	return 0
}
