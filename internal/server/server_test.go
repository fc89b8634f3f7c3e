package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/game"
	"github.com/osse101/MartianPotato_Go/internal/settings"
	"github.com/osse101/MartianPotato_Go/internal/sse"
)

func newTestRouter(t *testing.T) (http.Handler, *game.Game) {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.RandSource = rand.NewSource(7)

	g := game.New(clock.NewFake(time.Unix(0, 0)), event.NewMemoryBus(), settings.NewMemoryRepository(), cfg)
	require.NoError(t, g.Start(context.Background()))

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	return NewRouter(Options{ImagesDir: t.TempDir()}, g, hub), g
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_GameFlow(t *testing.T) {
	r, g := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var state domain.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, int64(20), state.Resources.Potatoes)

	rec = serve(r, http.MethodPost, "/api/v1/explore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":true`)

	rec = serve(r, http.MethodPost, "/api/v1/explore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"wait_seconds":10`)

	rec = serve(r, http.MethodPost, "/api/v1/upgrades/purchase", `{"index": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"purchased":true`)
	assert.Equal(t, int64(10), g.State().Resources.Potatoes)

	rec = serve(r, http.MethodPost, "/api/v1/upgrades/purchase", `{"index": 0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(r, http.MethodPut, "/api/v1/exploration/rate", `{"rate": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.TickerRunning, g.State().Exploration.Ticker)

	rec = serve(r, http.MethodPost, "/api/v1/save", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/readyz", "").Code)

	serve(r, http.MethodGet, "/api/v1/upgrades", "")
	rec := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/upgrades")
}

func TestRouter_WrongMethod(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, http.MethodGet, "/api/v1/explore", "").Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/healthz", "")

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimiter(t *testing.T) {
	now := time.Unix(1000, 0)
	l := newRateLimiter(2, time.Minute, func() time.Time { return now })

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	h := RateLimitMiddleware(nil, limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/", "").Code)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	req.Header.Set(HeaderForwardedFor, "1.2.3.4, 5.6.7.8")

	assert.Equal(t, "192.168.1.5", extractIP(req, nil))
	assert.Equal(t, "5.6.7.8", extractIP(req, []string{"192.168.1.5"}))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set(HeaderCookie, "session=abc123")
	req.Header.Set("User-Agent", "TestAgent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "mytoken")
	assert.NotContains(t, out, "abc123")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_PassesFlusher(t *testing.T) {
	var flushed bool
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, flushed = w.(http.Flusher)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	assert.True(t, flushed)
}
