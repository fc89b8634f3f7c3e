package worker

import (
	"context"
	"fmt"

	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Saver persists the game
type Saver interface {
	Save(ctx context.Context, source string) error
}

// Replenisher restarts auto-planters that ran dry
type Replenisher interface {
	ReactivateDormant(ctx context.Context) int
}

// AutosaveJob writes a periodic snapshot
type AutosaveJob struct {
	saver  Saver
	source string
}

// NewAutosaveJob creates an autosave job tagging saves with source
func NewAutosaveJob(saver Saver, source string) *AutosaveJob {
	return &AutosaveJob{saver: saver, source: source}
}

func (j *AutosaveJob) Name() string { return JobNameAutosave }

// Process saves the game
func (j *AutosaveJob) Process(ctx context.Context) error {
	if err := j.saver.Save(ctx, j.source); err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgAutosaveCompleted)
	return nil
}

// ReplenishJob restarts dormant auto-planters once resources are available again
type ReplenishJob struct {
	replenisher Replenisher
}

// NewReplenishJob creates a replenish job
func NewReplenishJob(r Replenisher) *ReplenishJob {
	return &ReplenishJob{replenisher: r}
}

func (j *ReplenishJob) Name() string { return JobNameReplenish }

// Process runs one replenishment check
func (j *ReplenishJob) Process(ctx context.Context) error {
	if n := j.replenisher.ReactivateDormant(ctx); n > 0 {
		logger.FromContext(ctx).Info(LogMsgReplenished, "restarted", n)
	}
	return nil
}
