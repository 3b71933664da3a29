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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/starquiz/StarQuiz_Go/internal/audit"
	"github.com/starquiz/StarQuiz_Go/internal/badge"
	"github.com/starquiz/StarQuiz_Go/internal/database"
	"github.com/starquiz/StarQuiz_Go/internal/handler"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/metrics"
	"github.com/starquiz/StarQuiz_Go/internal/reward"
	"github.com/starquiz/StarQuiz_Go/internal/star"
)

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	badgeService  badge.Service
	starService   star.Service
	rewardService reward.Service
	auditService  audit.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey, adminKey string, trustedProxies []string, dbPool database.Pool, badgeService badge.Service, starService star.Service, rewardService reward.Service, auditService audit.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, adminKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	gameHandlers := handler.NewGameHandlers(badgeService, starService)
	badgeHandlers := handler.NewBadgeHandlers(badgeService)
	rewardHandlers := handler.NewRewardHandlers(rewardService)
	starHandlers := handler.NewStarHandlers(starService)
	adminHandlers := handler.NewAdminHandlers(rewardService, auditService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/game/completed", gameHandlers.HandleGameCompleted())

		r.Route("/player", func(r chi.Router) {
			r.Get("/summary", badgeHandlers.HandleGetPlayerSummary())
			r.Get("/rank", starHandlers.HandleGetRank())
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", rewardHandlers.HandleListRewards())
			r.Get("/unclaimed", rewardHandlers.HandleListUnclaimed())
			r.Post("/request", rewardHandlers.HandleRequestReward())
			r.Post("/request-all", rewardHandlers.HandleRequestAll())
		})

		r.Get("/stars", starHandlers.HandleGetStars())
		r.Get("/milestones", starHandlers.HandleGetMilestones())
		r.Get("/leaderboard", starHandlers.HandleGetLeaderboard())

		// Admin routes, gated on the admin key by AuthMiddleware
		r.Route("/admin", func(r chi.Router) {
			r.Post("/rewards/award", adminHandlers.HandleAwardRewards())
			r.Get("/audit", adminHandlers.HandleGetAudit())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:        dbPool,
		badgeService:  badgeService,
		starService:   starService,
		rewardService: rewardService,
		auditService:  auditService,
	}
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
