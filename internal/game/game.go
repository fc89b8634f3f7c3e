// Package game owns the single game state and exposes every player action.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/cooldown"
	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/exploration"
	"github.com/osse101/MartianPotato_Go/internal/logger"
	"github.com/osse101/MartianPotato_Go/internal/notify"
	"github.com/osse101/MartianPotato_Go/internal/planting"
	"github.com/osse101/MartianPotato_Go/internal/reward"
	"github.com/osse101/MartianPotato_Go/internal/settings"
	"github.com/osse101/MartianPotato_Go/internal/store"
)

// Game is the explicit owner of all simulation state.
type Game struct {
	bus         event.Bus
	display     notify.Display
	store       *store.Store
	cooldowns   *cooldown.Tracker
	exploration exploration.Service
	planting    planting.Service
	settings    settings.Service

	// saveMu serializes snapshot writes so autosave and shutdown never interleave.
	saveMu sync.Mutex
}

// New wires a game. Display refreshes and notices are published on bus.
func New(clk clock.Clock, bus event.Bus, repo settings.Repository, cfg Config) *Game {
	publisher := notify.NewBusPublisher(bus)

	st := store.New(cfg.Store)
	tracker := cooldown.NewTracker(clk, cfg.Cooldown)
	rewards := reward.NewGenerator(cfg.RandSource)

	g := &Game{
		bus:         bus,
		display:     publisher,
		store:       st,
		cooldowns:   tracker,
		exploration: exploration.NewService(clk, st, rewards, tracker, publisher, publisher, cfg.Exploration),
		planting:    planting.NewService(clk, st, tracker, publisher, publisher, cfg.Planting),
		settings:    settings.NewService(repo),
	}
	publisher.SetStateSource(g.State)
	return g
}

// Start restores the saved game, if any, and starts autonomous production.
// A corrupt save is logged and ignored; a storage failure is returned.
func (g *Game) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := g.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrInvalidSnapshot) {
			return err
		}
		log.Warn(LogMsgSnapshotDiscarded, "error", err)
	}

	g.exploration.Reconcile(ctx)
	log.Info(LogMsgGameStarted, "potatoes", g.store.Snapshot().Potatoes)
	return nil
}

// Load replaces the current state with the saved snapshot, if one exists.
func (g *Game) Load(ctx context.Context) error {
	snap, found, err := g.settings.LoadSnapshot(ctx, g.Snapshot())
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	// Nothing is applied until the whole snapshot is accepted
	if err := g.planting.ValidateTier(snap.Tier); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRestoreFailed, err)
	}

	g.store.Restore(snap.Resources)
	g.settings.Restore(snap.Settings)
	if err := g.planting.Restore(ctx, snap.Tier, snap.AutoPlanterCosts); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRestoreFailed, err)
	}
	if err := g.exploration.SetRate(ctx, snap.ExplorationRate); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRestoreFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotRestored,
		"potatoes", snap.Resources.Potatoes, "tier", snap.Tier, "auto_planters", len(snap.AutoPlanterCosts))
	return nil
}

// Save writes the current snapshot. source tags the save in events and metrics.
func (g *Game) Save(ctx context.Context, source string) error {
	g.saveMu.Lock()
	defer g.saveMu.Unlock()

	n, err := g.settings.SaveSnapshot(ctx, g.Snapshot())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}

	if err := g.bus.Publish(ctx, event.NewGameSavedEvent(n, source)); err != nil {
		logger.FromContext(ctx).Warn(notify.LogMsgPublishFailed, "event_type", event.GameSaved, "error", err)
	}
	logger.FromContext(ctx).Debug(LogMsgGameSaved, "source", source, "keys", n)
	return nil
}

// Shutdown stops every timer and writes a final snapshot.
func (g *Game) Shutdown(ctx context.Context) error {
	g.exploration.Stop(ctx)
	g.planting.Stop(ctx)
	logger.FromContext(ctx).Info(LogMsgGameStopped)
	return g.Save(ctx, event.SaveSourceShutdown)
}

// State returns the full read model.
func (g *Game) State() domain.GameState {
	return domain.GameState{
		Resources:   g.store.Snapshot(),
		Planting:    g.planting.State(),
		Exploration: g.exploration.State(),
		Settings:    g.settings.Get(),
	}
}

// Snapshot returns the persistable view of the game.
func (g *Game) Snapshot() domain.Snapshot {
	plantingState := g.planting.State()
	costs := make([]int64, len(plantingState.AutoPlanters))
	for i, u := range plantingState.AutoPlanters {
		costs[i] = u.CostAtPurchase
	}

	return domain.Snapshot{
		Resources:        g.store.Snapshot(),
		Tier:             plantingState.Tier,
		AutoPlanterCosts: costs,
		ExplorationRate:  g.exploration.Rate(),
		Settings:         g.settings.Get(),
	}
}

// Explore runs a manual exploration. Fresh resources also wake dormant auto-planters.
func (g *Game) Explore(ctx context.Context) (domain.ExploreResult, error) {
	res, err := g.exploration.Explore(ctx)
	if err != nil {
		return res, err
	}
	if res.Allowed {
		g.planting.ReactivateDormant(ctx)
	}
	return res, nil
}

// Plant runs one manual planting.
func (g *Game) Plant(ctx context.Context) (domain.PlantResult, error) {
	return g.planting.Plant(ctx)
}

// Purchase buys the upgrade at index.
func (g *Game) Purchase(ctx context.Context, index int) (domain.PurchaseResult, error) {
	return g.planting.Purchase(ctx, index)
}

// AvailableUpgrades lists the upgrades currently offered.
func (g *Game) AvailableUpgrades() []domain.UpgradeOffer {
	return g.planting.AvailableUpgrades()
}

// Upgrades returns the full upgrade list.
func (g *Game) Upgrades() []domain.Upgrade {
	return g.planting.Upgrades()
}

// SetExplorationRate changes the autonomous exploration rate.
func (g *Game) SetExplorationRate(ctx context.Context, rate float64) error {
	return g.exploration.SetRate(ctx, rate)
}

// ReactivateDormant runs the replenishment check.
func (g *Game) ReactivateDormant(ctx context.Context) int {
	return g.planting.ReactivateDormant(ctx)
}

// Settings returns the player preferences.
func (g *Game) Settings() domain.Settings {
	return g.settings.Get()
}

// UpdateSettings replaces the player preferences.
func (g *Game) UpdateSettings(ctx context.Context, s domain.Settings) domain.Settings {
	updated := g.settings.Update(ctx, s)
	g.display.NotifyDisplayChanged(ctx)
	return updated
}
