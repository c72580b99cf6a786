package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = contextKey("requestID")
	userIDKey       = contextKey("userID")
)

// requestID propagates the caller's X-Request-ID or generates one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))
	})
}

func getRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}

	return ""
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := getRequestID(r.Context())

		log := s.log.With(
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
		log.Info("request started")

		t1 := time.Now()
		ww := newResponseWriterWrapper(w)

		next.ServeHTTP(ww, r)

		log.Info("request completed",
			slog.Int("status", ww.statusCode),
			slog.String("duration", time.Since(t1).String()),
		)
	})
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.authenticate(r)
		if !ok {
			s.respondAPIError(w, http.StatusUnauthorized, api.UNAUTHORIZED, apperrors.ErrUnauthorized.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// optionalAuth attaches the caller when a valid token is present and lets
// anonymous requests through. An invalid token is treated as anonymous.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := s.authenticate(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	claims, err := s.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		s.log.Debug("rejected access token", slog.String("request_id", getRequestID(r.Context())), slog.String("error", err.Error()))
		return "", false
	}

	return claims.UserID, true
}

// getUserID returns the authenticated caller, or "" for anonymous requests.
func getUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}

	return ""
}
