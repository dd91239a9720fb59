/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Structured request logging (slog), request-scoped logger
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for frontend
  5. RateLimit:  Token bucket shared by all clients (429 when empty)

ROUTE GROUPS:
  /api/simulations   Stateless simulation
  /api/scenarios/*   Stored scenarios and their histories
  /api/demos/*       Built-in demo scenarios

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/warp/wealth-engine/logger"
	"golang.org/x/time/rate"
)

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	AllowedOrigins []string

	// Requests per second and burst of the shared token bucket. A zero
	// rate disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))
	if opts.RateLimitRPS > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)))
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/simulations", h.RunSimulation)

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/", h.CreateScenario)
			r.Get("/{id}", h.GetScenario)
			r.Delete("/{id}", h.DeleteScenario)
			r.Get("/{id}/history", h.GetScenarioHistory)
			r.Get("/{id}/history/{month}", h.GetScenarioReporting)
		})

		// Demo routes
		r.Route("/demos", func(r chi.Router) {
			r.Get("/", h.ListDemos)
			r.Post("/{id}", h.LoadDemo)
		})
	})

	return r
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

// RateLimit rejects requests with 429 once the limiter is exhausted.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.FromContext(r.Context()).Warn("Rate limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr)
				writeError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs every request once served and stores a logger
// carrying the request id in the request context.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.L.With("requestId", middleware.GetReqID(r.Context()))
		ctx := logger.WithContext(r.Context(), l)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			l.Info("Request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String())
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
