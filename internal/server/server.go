// Package server exposes the dialog dispatcher over HTTP for local runs.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"petfinder-bot/internal/common/errors"
	"petfinder-bot/internal/common/logger"
	"petfinder-bot/internal/dialog"
	"petfinder-bot/internal/models"
	"petfinder-bot/pkg/registry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxEventBytes = 1 << 20

// Dispatcher handles raw Lex events.
type Dispatcher interface {
	HandleEvent(ctx context.Context, raw []byte) (*models.Response, error)
	Registry() *registry.IntentRegistry
}

type Config struct {
	Dispatcher Dispatcher
	Logger     logger.Logger
	Version    string
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type apiError struct {
	Body apiErrorBody `json:"error"`
}

type server struct {
	dispatcher Dispatcher
	logger     logger.Logger
	version    string
}

// New returns the router: POST /lex, GET /intents, GET /health, GET /metrics.
func New(cfg Config) http.Handler {
	s := &server{
		dispatcher: cfg.Dispatcher,
		logger:     cfg.Logger.WithFields(map[string]interface{}{"component": "http"}),
		version:    cfg.Version,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := dialog.WithRequestID(req.Context(), middleware.GetReqID(req.Context()))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Post("/lex", s.handleLex)
	r.Get("/intents", s.handleIntents)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *server) handleLex(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
	if err != nil {
		s.writeError(w, errors.NewInvalidRequestError("read body: "+err.Error()))
		return
	}

	resp, err := s.dispatcher.HandleEvent(r.Context(), body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleIntents(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dispatcher.Registry())
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeInvalidBotName, errors.ErrCodeUnsupportedIntent:
		return http.StatusBadRequest
	case errors.ErrCodeExternalLookupFailed, errors.ErrCodeExternalLookupTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	body := apiErrorBody{
		Code:    string(errors.ErrCodeInternal),
		Message: err.Error(),
	}
	if stdErr, ok := errors.AsStandardError(err); ok {
		body = apiErrorBody{
			Code:    string(stdErr.Code),
			Message: stdErr.Message,
			Details: stdErr.Details,
		}
	}
	s.writeJSON(w, statusFor(errors.ErrorCode(body.Code)), apiError{Body: body})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}
