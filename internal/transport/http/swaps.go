package http

import (
	"net/http"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/go-chi/chi/v5"
)

func (s *Server) PostSwap(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSwap"

	var req api.CreateSwapRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	swap, err := s.swapService.Create(r.Context(), getUserID(r.Context()), service.CreateSwapInput{
		RecipientID:      req.RecipientID,
		SkillOfferedID:   req.SkillOfferedID,
		SkillRequestedID: req.SkillRequestedID,
		Message:          req.Message,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, swap)
}

// GetSwaps lists the caller's requests. direction defaults to received.
func (s *Server) GetSwaps(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSwaps"

	direction, err := bindDirection(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if direction == "" {
		direction = string(domain.SwapDirectionReceived)
	}

	swaps, err := s.swapService.ListByUser(r.Context(), getUserID(r.Context()), domain.SwapDirection(direction))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.SwapsResponse{Swaps: swaps})
}

func (s *Server) GetSwapsCompleted(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSwapsCompleted"

	swaps, err := s.swapService.ListCompleted(r.Context(), getUserID(r.Context()))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.SwapsResponse{Swaps: swaps})
}

func (s *Server) GetSwap(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSwap"

	swap, err := s.swapService.Get(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, swap)
}

func (s *Server) PostSwapRespond(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSwapRespond"

	var req api.RespondSwapRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	swap, err := s.swapService.Respond(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), domain.SwapStatus(req.Status))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, swap)
}

func (s *Server) PostSwapComplete(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSwapComplete"

	swap, err := s.swapService.Complete(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, swap)
}

func (s *Server) DeleteSwap(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.DeleteSwap"

	if err := s.swapService.Delete(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) PostSwapFeedback(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSwapFeedback"

	var req api.SubmitFeedbackRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	fb, err := s.feedbackService.Submit(r.Context(), service.SubmitFeedbackInput{
		SwapID:     chi.URLParam(r, "id"),
		FromUserID: getUserID(r.Context()),
		ToUserID:   req.ToUserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, fb)
}

// GetSwapFeedback is visible to the swap's participants only.
func (s *Server) GetSwapFeedback(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSwapFeedback"

	id := chi.URLParam(r, "id")

	if _, err := s.swapService.Get(r.Context(), getUserID(r.Context()), id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	list, err := s.feedbackService.ListBySwap(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.FeedbackResponse{Feedback: list})
}
