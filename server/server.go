package server

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	// Local Packages
	errors "tx-authorizer/errors"

	// External Packages
	"github.com/go-chi/chi/v5"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// Authorizer is the decision pipeline behind the endpoint.
type Authorizer interface {
	Authorize(ctx context.Context, body []byte) error
}

// HealthCheck reports whether the service's stores are reachable.
type HealthCheck func(ctx context.Context) error

// Server is the HTTP boundary. It owns the kind-to-status mapping and
// nothing of the decision logic: outcomes stay enumerated inside the
// engine and become status codes only here.
type Server struct {
	logger *zap.Logger
	engine Authorizer
	health HealthCheck
	router chi.Router
}

func New(logger *zap.Logger, engine Authorizer, metrics *kprom.Metrics, health HealthCheck) *Server {
	s := &Server{logger: logger, engine: engine, health: health}

	router := chi.NewRouter()
	router.Post("/authorize", s.handleAuthorize)
	router.Get("/healthz", s.handleHealth)
	if metrics != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: s.router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("server shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("listening", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	// Nothing may escape as an unhandled failure: whatever goes wrong below
	// this line becomes a 400 with the cause in details.
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("panic in authorize handler", zap.Any("panic", p))
			respondError(w, http.StatusBadRequest, "An error occurred", fmt.Sprint(p))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		respondError(w, http.StatusBadRequest, "An error occurred", "Your request is not formatted correctly")
		return
	}

	if err := s.engine.Authorize(r.Context(), body); err != nil {
		respondError(w, statusFor(err), errors.Message(err), errors.Details(err))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Approved"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health(ctx); err != nil {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

// statusFor maps an error kind to its status code. The 401 is shared by the
// merchant and security-code rejections on purpose.
func statusFor(err error) int {
	switch errors.KindOf(err) {
	case errors.Invalid:
		return http.StatusBadRequest
	case errors.Unauthorized:
		return http.StatusUnauthorized
	case errors.Declined:
		return http.StatusPaymentRequired
	case errors.NotFound:
		return http.StatusNotFound
	case errors.Unavailable:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func respondError(w http.ResponseWriter, status int, label, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": label, "details": details})
}
