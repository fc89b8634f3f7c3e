package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MartianPotato_Go/internal/handler"
	"github.com/osse101/MartianPotato_Go/internal/logger"
	"github.com/osse101/MartianPotato_Go/internal/metrics"
	"github.com/osse101/MartianPotato_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	TrustedProxies []string
	ImagesDir      string
	// Storage is pinged by /readyz; nil means always ready
	Storage handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, game handler.Game, hub *sse.Hub) *Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts, game, hub),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	// Open event streams never go idle; closing the hub ends them so Shutdown can finish
	srv.RegisterOnShutdown(hub.Stop)

	return &Server{httpServer: srv}
}

// NewRouter builds the routes and middleware stack
func NewRouter(opts Options, game handler.Game, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewRateLimiter(RateLimitRequests, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(opts.Storage))
	r.Handle(PathMetrics, promhttp.Handler())

	images := handler.NewImageHandler(opts.ImagesDir)
	r.Handle(PathImages+"/*", http.StripPrefix(PathImages+"/", images.FileServer()))

	gameHandler := handler.NewGameHandler(game)
	r.Route(PathAPIV1, func(r chi.Router) {
		r.Get(PathState, gameHandler.State)
		r.Post(PathExplore, gameHandler.Explore)
		r.Post(PathPlant, gameHandler.Plant)
		r.Get(PathUpgrades, gameHandler.Upgrades)
		r.Post(PathPurchase, gameHandler.Purchase)
		r.Put(PathRate, gameHandler.SetRate)
		r.Get(PathSettings, gameHandler.GetSettings)
		r.Put(PathSettings, gameHandler.UpdateSettings)
		r.Post(PathSave, gameHandler.Save)
		r.Get(PathImages, images.List)
		r.Get(PathEvents, sse.Handler(hub))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
