package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
)

func TestBusPublisher_ShowNotice(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []event.Event
	bus.Subscribe(event.NoticeShown, func(_ context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})

	p := NewBusPublisher(bus)
	p.ShowNotice(context.Background(), "Exploration", "Found 3 water", domain.SeveritySuccess)

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(event.NoticeShownPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Found 3 water", payload.Notice.Message)
	assert.Equal(t, domain.SeveritySuccess, payload.Notice.Severity)
}

func TestBusPublisher_NotifyDisplayChanged(t *testing.T) {
	bus := event.NewMemoryBus()
	var states []domain.GameState
	bus.Subscribe(event.StateChanged, func(_ context.Context, e event.Event) error {
		states = append(states, e.Payload.(event.StateChangedPayloadV1).State)
		return nil
	})

	p := NewBusPublisher(bus)

	// No state source yet: nothing published.
	p.NotifyDisplayChanged(context.Background())
	assert.Empty(t, states)

	p.SetStateSource(func() domain.GameState {
		return domain.GameState{Resources: domain.Resources{Potatoes: 42}}
	})
	p.NotifyDisplayChanged(context.Background())

	require.Len(t, states, 1)
	assert.Equal(t, int64(42), states[0].Resources.Potatoes)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	_, ok := r.Last()
	assert.False(t, ok)

	r.ShowNotice(ctx, "a", "one", domain.SeverityInfo)
	r.ShowNotice(ctx, "b", "two", domain.SeverityWarning)
	r.NotifyDisplayChanged(ctx)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "two", last.Message)
	assert.Len(t, r.Notices(), 2)
	assert.Equal(t, 1, r.Refreshes())

	drained := r.Drain()
	assert.Len(t, drained, 2)
	assert.Empty(t, r.Notices())
}

func TestNop(t *testing.T) {
	var d Display = Nop{}
	var n Notifier = Nop{}
	d.NotifyDisplayChanged(context.Background())
	n.ShowNotice(context.Background(), "t", "m", domain.SeverityInfo)
}
