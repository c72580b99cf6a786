// Package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service methods,
// and encodes the responses.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/auth"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/internal/validation"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/YusovID/skillswap/pkg/logger/sl"
	"github.com/YusovID/skillswap/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TokenParser is satisfied by *auth.TokenManager.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Pinger is a dependency checked by GET /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Services struct {
	Users    service.UserService
	Skills   service.SkillService
	Swaps    service.SwapService
	Feedback service.FeedbackService
}

// Server holds the dependencies for the HTTP server, including the logger and service interfaces.
type Server struct {
	log             *slog.Logger
	userService     service.UserService
	skillService    service.SkillService
	swapService     service.SwapService
	feedbackService service.FeedbackService
	tokens          TokenParser
	checks          map[string]Pinger
}

// NewServer creates a new instance of the HTTP server. checks are pinged by GET /health.
func NewServer(log *slog.Logger, svc Services, tokens TokenParser, checks map[string]Pinger) *Server {
	return &Server{
		log:             log,
		userService:     svc.Users,
		skillService:    svc.Skills,
		swapService:     svc.Swaps,
		feedbackService: svc.Feedback,
		tokens:          tokens,
		checks:          checks,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/health", s.GetHealth)

	mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.PostAuthRegister)
		r.Post("/login", s.PostAuthLogin)
	})

	mux.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.GetUsersMe)
			r.Patch("/me", s.PatchUsersMe)
			r.Delete("/me", s.DeleteUsersMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/{id}", s.GetUser)
			r.Get("/{id}/skills", s.GetUserSkills)
			r.Get("/{id}/feedback", s.GetUserFeedback)
		})
	})

	mux.Route("/skills", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/search", s.GetSkillsSearch)
			r.Get("/categories", s.GetSkillsCategories)
			r.Get("/{id}", s.GetSkill)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.PostSkill)
			r.Patch("/{id}", s.PatchSkill)
			r.Delete("/{id}", s.DeleteSkill)
			r.Post("/{id}/visibility", s.PostSkillVisibility)
			r.Post("/{id}/availability", s.PostSkillAvailability)
		})
	})

	mux.Route("/swaps", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/", s.PostSwap)
		r.Get("/", s.GetSwaps)
		r.Get("/completed", s.GetSwapsCompleted)
		r.Get("/{id}", s.GetSwap)
		r.Delete("/{id}", s.DeleteSwap)
		r.Post("/{id}/respond", s.PostSwapRespond)
		r.Post("/{id}/complete", s.PostSwapComplete)
		r.Post("/{id}/feedback", s.PostSwapFeedback)
		r.Get("/{id}/feedback", s.GetSwapFeedback)
	})

	return mux
}

// respond is a helper function to encode data to JSON and write it to the response.
// It centralizes setting the Content-Type header and writing the status code.
func (s *Server) respond(w http.ResponseWriter, code int, data any) {
	if data == nil {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", sl.Err(err))
	}
}

// respondAPIError sends the {"error":{"code","message"}} envelope.
func (s *Server) respondAPIError(w http.ResponseWriter, code int, apiCode api.ErrorCode, message string) {
	s.respond(w, code, api.ErrorResponse{
		Error: api.ErrorBody{
			Code:    apiCode,
			Message: message,
		},
	})
}

// decodeAndValidate is a helper that deserializes a JSON request body into a struct
// and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

func (s *Server) decode(body io.ReadCloser, v any) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError provides centralized error handling for all HTTP handlers.
// It logs the internal error and maps it to a user-facing HTTP response.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var (
		validationErr *validation.ValidationError
		emailTakenErr *apperrors.EmailTakenError
		transitionErr *apperrors.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Info("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.VALIDATION, validationErr.Error())
	case errors.Is(err, apperrors.ErrValidation):
		log.Info("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.VALIDATION, err.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Info("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.BADREQUEST, "invalid request")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		s.respondAPIError(w, http.StatusUnauthorized, api.INVALIDCREDENTIALS, apperrors.ErrInvalidCredentials.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		s.respondAPIError(w, http.StatusUnauthorized, api.UNAUTHORIZED, apperrors.ErrUnauthorized.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("forbidden", sl.Err(err))
		s.respondAPIError(w, http.StatusForbidden, api.FORBIDDEN, apperrors.ErrForbidden.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondAPIError(w, http.StatusNotFound, api.NOTFOUND, "resource not found")
	case errors.As(err, &emailTakenErr):
		s.respondAPIError(w, http.StatusConflict, api.EMAILTAKEN, apperrors.ErrEmailTaken.Error())
	case errors.Is(err, apperrors.ErrFeedbackExists):
		s.respondAPIError(w, http.StatusConflict, api.FEEDBACKEXISTS, apperrors.ErrFeedbackExists.Error())
	case errors.As(err, &transitionErr):
		s.respondAPIError(w, http.StatusConflict, api.INVALIDTRANSITION, transitionErr.Error())
	case errors.Is(err, apperrors.ErrAlreadyExists):
		s.respondAPIError(w, http.StatusConflict, api.ALREADYEXISTS, "resource already exists")
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondAPIError(w, http.StatusInternalServerError, api.INTERNAL, "internal server error")
	}
}
