package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/YusovID/skillswap/pkg/api"
	"github.com/YusovID/skillswap/pkg/logger/sl"
)

const healthTimeout = 2 * time.Second

// GetHealth pings every configured dependency. Any failure turns the whole report unavailable.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := api.HealthResponse{Status: "ok", Checks: make(map[string]string, len(s.checks))}

	for name, check := range s.checks {
		if err := check.Ping(ctx); err != nil {
			s.log.Warn("health check failed", slog.String("check", name), sl.Err(err))
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"

			continue
		}

		resp.Checks[name] = "ok"
	}

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	s.respond(w, code, resp)
}
