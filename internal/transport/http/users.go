package http

import (
	"net/http"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/go-chi/chi/v5"
)

func (s *Server) PostAuthRegister(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostAuthRegister"

	var req api.RegisterRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.Register(r.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, user)
}

func (s *Server) PostAuthLogin(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostAuthLogin"

	var req api.LoginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	resp, err := s.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) GetUsersMe(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetUsersMe"

	actorID := getUserID(r.Context())

	user, err := s.userService.GetProfile(r.Context(), actorID, actorID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, user)
}

func (s *Server) PatchUsersMe(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PatchUsersMe"

	var req api.UpdateProfileRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.UpdateProfile(r.Context(), getUserID(r.Context()), service.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfilePhoto: req.ProfilePhoto,
		Bio:          req.Bio,
		Location:     req.Location,
		IsPublic:     req.IsPublic,
		Availability: req.Availability,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, user)
}

func (s *Server) DeleteUsersMe(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.DeleteUsersMe"

	if err := s.userService.DeleteAccount(r.Context(), getUserID(r.Context())); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetUser"

	user, err := s.userService.GetProfile(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, user)
}

func (s *Server) GetUserSkills(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetUserSkills"

	skills, err := s.skillService.ListUserSkills(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.SkillsResponse{Skills: skills})
}

func (s *Server) GetUserFeedback(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetUserFeedback"

	direction, err := bindDirection(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	list, err := s.feedbackService.ListByUser(r.Context(), chi.URLParam(r, "id"), domain.FeedbackDirection(direction))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.FeedbackResponse{Feedback: list})
}
