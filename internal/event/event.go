package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	StateChanged Type = "state.changed"
	NoticeShown  Type = "notice.shown"
	GameSaved    Type = "game.saved"
)

// StateChangedPayloadV1 carries a full game snapshot for the display
type StateChangedPayloadV1 struct {
	State     domain.GameState `json:"state"`
	Timestamp int64            `json:"timestamp"`
}

// NoticeShownPayloadV1 carries a player-facing notice
type NoticeShownPayloadV1 struct {
	Notice    domain.Notice `json:"notice"`
	Timestamp int64         `json:"timestamp"`
}

// GameSavedPayloadV1 reports a completed snapshot write
type GameSavedPayloadV1 struct {
	Keys      int    `json:"keys"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// NewStateChangedEvent creates a state changed event
func NewStateChangedEvent(state domain.GameState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StateChanged,
		Payload: StateChangedPayloadV1{
			State:     state,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewNoticeShownEvent creates a notice event
func NewNoticeShownEvent(notice domain.Notice) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    NoticeShown,
		Payload: NoticeShownPayloadV1{
			Notice:    notice,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySeverity: string(notice.Severity),
		},
	}
}

// NewGameSavedEvent creates a saved event. source is "autosave", "manual" or "shutdown".
func NewGameSavedEvent(keys int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameSaved,
		Payload: GameSavedPayloadV1{
			Keys:      keys,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine and must not block.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
