package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/browse/internal/domain"
	logpkg "github.com/kailas-cloud/browse/internal/logger"
	healthuc "github.com/kailas-cloud/browse/internal/usecase/health"
	homepageuc "github.com/kailas-cloud/browse/internal/usecase/homepage"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the home page API.
type Server struct {
	home          *homepageuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(home *homepageuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		home:   home,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInternal, http.StatusInternalServerError, ErrorCodeInternal, "internal error"),
	}
	return s
}

// Routes registers the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.GetHomePage)
	r.Get("/api/v1/home", s.GetHomePage)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// GetHomePage handles GET / and GET /api/v1/home.
func (s *Server) GetHomePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.home.GetHomePage(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, homePageToResponse(page))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client sees only msg, never the wrapped detail.
func sentinelHandler(sentinel error, status int, code ErrorCode, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("request failed", zap.Error(err))
			return
		}
	}
	log.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternal, "internal error")
}
