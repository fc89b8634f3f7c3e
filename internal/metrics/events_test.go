package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
)

func TestEventMetricsCollector_StateChanged(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	state := domain.GameState{
		Resources: domain.Resources{Potatoes: 7, Water: 3.5, Nutrients: 2, Ice: 1},
		Planting: domain.PlantingState{
			Tier: 2,
			AutoPlanters: []domain.AutoPlanter{
				{ID: "a", Active: true},
				{ID: "b", Active: false},
				{ID: "c", Active: true},
			},
		},
		Exploration: domain.ExplorationState{Rate: 1.5},
	}

	require.NoError(t, bus.Publish(context.Background(), event.NewStateChangedEvent(state)))

	assert.Equal(t, 7.0, testutil.ToFloat64(ResourceAmount.WithLabelValues(domain.ResourcePotatoes)))
	assert.Equal(t, 3.5, testutil.ToFloat64(ResourceAmount.WithLabelValues(domain.ResourceWater)))
	assert.Equal(t, 2.0, testutil.ToFloat64(AutoPlanters.WithLabelValues(StatusActive)))
	assert.Equal(t, 1.0, testutil.ToFloat64(AutoPlanters.WithLabelValues(StatusDormant)))
	assert.Equal(t, 1.5, testutil.ToFloat64(ExplorationRate))
	assert.Equal(t, 2.0, testutil.ToFloat64(PlantingTier))
}

func TestEventMetricsCollector_Notices(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(NoticesShown.WithLabelValues(string(domain.SeverityWarning)))
	notice := domain.Notice{Title: "Exploration", Message: "wait", Severity: domain.SeverityWarning}
	require.NoError(t, bus.Publish(context.Background(), event.NewNoticeShownEvent(notice)))

	after := testutil.ToFloat64(NoticesShown.WithLabelValues(string(domain.SeverityWarning)))
	assert.Equal(t, before+1, after)
}

func TestEventMetricsCollector_Saved(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(SnapshotsSaved.WithLabelValues(event.SaveSourceManual))
	require.NoError(t, bus.Publish(context.Background(), event.NewGameSavedEvent(13, event.SaveSourceManual)))
	assert.Equal(t, before+1, testutil.ToFloat64(SnapshotsSaved.WithLabelValues(event.SaveSourceManual)))
}

func TestEventMetricsCollector_BadPayloadIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.NoticeShown, Payload: make(chan int)})
	assert.NoError(t, err)
}

func TestRecordGathered(t *testing.T) {
	before := testutil.ToFloat64(ResourcesGathered.WithLabelValues(domain.ResourceIce))
	RecordGathered(domain.Bundle{Water: 1, Nutrients: 2, Ice: 3})
	assert.Equal(t, before+3, testutil.ToFloat64(ResourcesGathered.WithLabelValues(domain.ResourceIce)))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/plots/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plots/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plots/7", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plots/{id}", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plots/7", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_OutsideRouterIsUnmatched(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, LabelValueUnmatched, "204"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, LabelValueUnmatched, "204")))
}
