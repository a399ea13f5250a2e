// Package http exposes the budgeting API over JSON. This layer is the trust
// boundary: it authenticates the owner, validates periods and amounts, and
// runs the category existence check before transaction writes; the services
// and stores below it trust what they are handed.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"walletalert/internal/alerts"
	"walletalert/internal/cache"
	"walletalert/internal/log"
	"walletalert/internal/middleware/ratelimit"
	"walletalert/internal/services"
	"walletalert/internal/store"
)

// AlertPublisher pushes overspend notifications to the broker. A nil
// publisher disables alerts.
type AlertPublisher interface {
	PublishOverspend(ctx context.Context, msg *alerts.OverspendMessage) error
}

type Config struct {
	Addr               string
	JWTSecret          string
	DevMode            bool
	RateLimitPerMinute int
}

type Server struct {
	http.Server

	users        *services.UserService
	categories   *services.CategoryService
	budgets      *services.BudgetService
	transactions *services.TransactionService
	spending     *services.SpendingService
	alerts       AlertPublisher
	logger       *log.Logger

	rateLimiter  *ratelimit.Limiter
	summaryCache *cache.LRUCache[*services.Summary]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer wires routes, auth, rate limiting and the summary cache on top
// of the given store.
func NewServer(cfg Config, st store.Store, alertsPub AlertPublisher, logger *log.Logger) *Server {
	s := &Server{
		users:        services.NewUserService(st),
		categories:   services.NewCategoryService(st),
		budgets:      services.NewBudgetService(st),
		transactions: services.NewTransactionService(st),
		spending:     services.NewSpendingService(st, st),
		alerts:       alertsPub,
		logger:       logger,

		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RateLimitPerMinute,
		}),
		summaryCache:     cache.NewLRUCache[*services.Summary](100, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	api := http.NewServeMux()
	api.HandleFunc("PUT /api/user", s.handleUpsertUser)
	api.HandleFunc("GET /api/user", s.handleGetUser)

	api.HandleFunc("GET /api/categories", s.handleListCategories)
	api.HandleFunc("POST /api/categories", s.handleCreateCategory)
	api.HandleFunc("PATCH /api/categories/{id}", s.handleUpdateCategory)
	api.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	api.HandleFunc("GET /api/budgets", s.handleListBudgets)
	api.HandleFunc("POST /api/budgets", s.handleCreateBudget)
	api.HandleFunc("PATCH /api/budgets/{id}", s.handleUpdateBudget)
	api.HandleFunc("DELETE /api/budgets/{id}", s.handleDeleteBudget)

	api.HandleFunc("GET /api/transactions", s.handleListTransactions)
	api.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	api.HandleFunc("PATCH /api/transactions/{id}", s.handleUpdateTransaction)
	api.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	api.HandleFunc("GET /api/summary", s.handleSummary)

	auth := NewAuthenticator(cfg.JWTSecret, cfg.DevMode)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)
	mux.Handle("/api/", auth.Middleware(api))

	handler := log.Middleware(logger)(
		log.RequestIDMiddleware(requestIDFor)(
			s.observe(mux)))

	s.Server = http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// observe adds request logging, security headers and rate limiting on
// mutating methods.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		logger := log.FromContext(r.Context())

		if mutating(r.Method) && !s.rateLimiter.Allow(clientIP) {
			logger.WarnContext(r.Context(), "Rate limit exceeded",
				"client_ip", clientIP,
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Rate limit exceeded"})
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		logger.InfoContext(r.Context(), "Request completed",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	})
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// responseWriter captures the status code for request logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func extractClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func requestIDFor(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return generateRequestID()
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.summaryCache.CleanExpired(); cleaned > 0 {
				s.logger.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// invalidateSummary drops the cached summary for an owner after any write
// that can change it.
func (s *Server) invalidateSummary(owner string) {
	s.summaryCache.Delete(owner)
}

// notifyOverspend checks the owner's budgets in the background and publishes
// an alert for each one whose current-period spending crossed its amount.
// Failures are logged and never surface to the request that triggered them.
func (s *Server) notifyOverspend(owner string) {
	if s.alerts == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		overspends, err := s.spending.Overspent(ctx, owner, time.Now())
		if err != nil {
			s.logger.WarnContext(ctx, "Overspend check failed",
				log.FieldOwnerID, owner,
				log.FieldError, err)
			return
		}

		for _, o := range overspends {
			msg := alerts.NewOverspendMessage(owner, o.Budget, o.Spent)
			if err := s.alerts.PublishOverspend(ctx, msg); err != nil {
				s.logger.WarnContext(ctx, "Overspend alert publish failed",
					log.FieldOwnerID, owner,
					log.FieldBudgetID, o.Budget.ID,
					log.FieldError, err)
			}
		}
	}()
}

// Shutdown stops the cleanup goroutines and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
