package metrics

import (
	"context"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.StateChanged, event.NoticeShown, event.GameSaved} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.StateChanged:
		payload, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		RecordState(payload.State)

	case event.NoticeShown:
		payload, err := event.DecodePayload[event.NoticeShownPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		NoticesShown.WithLabelValues(string(payload.Notice.Severity)).Inc()

	case event.GameSaved:
		payload, err := event.DecodePayload[event.GameSavedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		SnapshotsSaved.WithLabelValues(payload.Source).Inc()
	}

	return nil
}

// RecordState refreshes the state gauges from a snapshot
func RecordState(s domain.GameState) {
	ResourceAmount.WithLabelValues(domain.ResourcePotatoes).Set(float64(s.Resources.Potatoes))
	ResourceAmount.WithLabelValues(domain.ResourceWater).Set(s.Resources.Water)
	ResourceAmount.WithLabelValues(domain.ResourceNutrients).Set(s.Resources.Nutrients)
	ResourceAmount.WithLabelValues(domain.ResourceIce).Set(s.Resources.Ice)

	active := 0
	for _, unit := range s.Planting.AutoPlanters {
		if unit.Active {
			active++
		}
	}
	AutoPlanters.WithLabelValues(StatusActive).Set(float64(active))
	AutoPlanters.WithLabelValues(StatusDormant).Set(float64(len(s.Planting.AutoPlanters) - active))

	ExplorationRate.Set(s.Exploration.Rate)
	PlantingTier.Set(float64(s.Planting.Tier))
}

// RecordGathered adds a credited reward to the gathered counters
func RecordGathered(b domain.Bundle) {
	ResourcesGathered.WithLabelValues(domain.ResourceWater).Add(b.Water)
	ResourcesGathered.WithLabelValues(domain.ResourceNutrients).Add(b.Nutrients)
	ResourcesGathered.WithLabelValues(domain.ResourceIce).Add(b.Ice)
}
