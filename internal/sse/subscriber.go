package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/MartianPotato_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every event type streamed to clients
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.StateChanged, s.handleStateChanged)
	s.bus.Subscribe(event.NoticeShown, s.handleNoticeShown)
	s.bus.Subscribe(event.GameSaved, s.handleGameSaved)

	slog.Info(LogMsgSubscribed,
		"types", []string{string(event.StateChanged), string(event.NoticeShown), string(event.GameSaved)})
}

func (s *Subscriber) handleStateChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeState, payload.State)
	return nil
}

func (s *Subscriber) handleNoticeShown(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.NoticeShownPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeNotice, NoticePayload{
		Title:    payload.Notice.Title,
		Message:  payload.Notice.Message,
		Severity: payload.Notice.Severity,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeNotice, "severity", payload.Notice.Severity)
	return nil
}

func (s *Subscriber) handleGameSaved(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GameSavedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeSaved, SavedPayload{Keys: payload.Keys, Source: payload.Source})
	return nil
}
