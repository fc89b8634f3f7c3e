// Package notify carries display refreshes and player notices out of the
// simulation core. The core never renders anything itself.
package notify

import (
	"context"
	"sync"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// Display is told that resources or upgrades changed. It must tolerate high call rates.
type Display interface {
	NotifyDisplayChanged(ctx context.Context)
}

// Notifier shows a message to the player.
type Notifier interface {
	ShowNotice(ctx context.Context, title, message string, severity domain.Severity)
}

// StateFunc returns the current game snapshot.
type StateFunc func() domain.GameState

// BusPublisher implements Display and Notifier by publishing on the event bus.
// Callers must not hold game locks when calling it, since it reads a fresh snapshot.
type BusPublisher struct {
	bus event.Bus

	mu    sync.RWMutex
	state StateFunc
}

// NewBusPublisher creates a publisher. The state source can be attached later with SetStateSource.
func NewBusPublisher(bus event.Bus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

// SetStateSource attaches the snapshot function used for state.changed events.
func (p *BusPublisher) SetStateSource(fn StateFunc) {
	p.mu.Lock()
	p.state = fn
	p.mu.Unlock()
}

// NotifyDisplayChanged publishes a state.changed event.
func (p *BusPublisher) NotifyDisplayChanged(ctx context.Context) {
	p.mu.RLock()
	fn := p.state
	p.mu.RUnlock()
	if fn == nil {
		return
	}

	if err := p.bus.Publish(ctx, event.NewStateChangedEvent(fn())); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", event.StateChanged, "error", err)
	}
}

// ShowNotice publishes a notice.shown event.
func (p *BusPublisher) ShowNotice(ctx context.Context, title, message string, severity domain.Severity) {
	notice := domain.Notice{Title: title, Message: message, Severity: severity}
	logger.FromContext(ctx).Debug(LogMsgNotice, "title", title, "severity", severity)

	if err := p.bus.Publish(ctx, event.NewNoticeShownEvent(notice)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", event.NoticeShown, "error", err)
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) NotifyDisplayChanged(context.Context) {}
func (Nop) ShowNotice(context.Context, string, string, domain.Severity) {}
