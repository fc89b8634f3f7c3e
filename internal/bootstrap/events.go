package bootstrap

import (
	"log/slog"

	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/metrics"
	"github.com/osse101/MartianPotato_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches the metrics collector
// and, when hub is non-nil, the SSE forwarder.
func InitializeEventSystem(hub *sse.Hub) *event.MemoryBus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
	}

	slog.Info(LogMsgEventSystemInitialized, "sse", hub != nil)
	return bus
}
