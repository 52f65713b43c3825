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

	_ "github.com/xapes/xma-slots/docs"
	"github.com/xapes/xma-slots/internal/database"
	"github.com/xapes/xma-slots/internal/handler"
	"github.com/xapes/xma-slots/internal/ledger"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/metrics"
	"github.com/xapes/xma-slots/internal/stats"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	collectService handler.CollectService
	ledgerService  ledger.Service
	statsService   stats.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, chainHealth handler.HealthChecker, collectService handler.CollectService, ledgerService ledger.Service, statsService stats.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, chainHealth, collectService, ledgerService, statsService),
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		collectService: collectService,
		ledgerService:  ledgerService,
		statsService:   statsService,
	}
}

// NewRouter builds the HTTP routing tree with the full middleware stack
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, chainHealth handler.HealthChecker, collectService handler.CollectService, ledgerService ledger.Service, statsService stats.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, chainHealth))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Game routes are public; the wallet address is the identity
	collectHandler := handler.NewCollectHandler(collectService)
	r.Post("/collect", collectHandler.HandleCollect)
	r.Post("/confirm-collect", collectHandler.HandleConfirmCollect)

	gameHandler := handler.NewGameHandler(ledgerService)
	r.Post("/save-game", gameHandler.HandleSaveGame)
	r.Post("/spin", gameHandler.HandleSpin)
	r.Get("/load-player", gameHandler.HandleLoadPlayer)
	r.Get("/history", gameHandler.HandleHistory)

	r.Get("/leaderboard", handler.HandleLeaderboard(statsService))
	r.Get("/game-stats", handler.HandleGameStats(statsService))

	r.Route("/admin", func(r chi.Router) {
		r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
		r.Post("/recover-collects", handler.HandleRecoverCollects(collectService))
		r.Post("/stats/invalidate", handler.HandleInvalidateStats(statsService))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		w.Header().Set(HeaderRequestID, requestID)
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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
