package http

import (
	"net/http"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/go-chi/chi/v5"
)

func (s *Server) PostSkill(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSkill"

	var req api.CreateSkillRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	skill, err := s.skillService.CreateSkill(r.Context(), getUserID(r.Context()), service.CreateSkillInput{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		ProficiencyLevel: domain.ProficiencyLevel(req.ProficiencyLevel),
		Type:             domain.SkillType(req.Type),
		IsPublic:         req.IsPublic,
		IsAvailable:      req.IsAvailable,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, skill)
}

func (s *Server) GetSkill(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSkill"

	skill, err := s.skillService.GetSkill(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, skill)
}

func (s *Server) PatchSkill(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PatchSkill"

	var req api.UpdateSkillRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	in := service.UpdateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		IsAvailable: req.IsAvailable,
	}

	if req.ProficiencyLevel != nil {
		level := domain.ProficiencyLevel(*req.ProficiencyLevel)
		in.ProficiencyLevel = &level
	}

	skill, err := s.skillService.UpdateSkill(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), in)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, skill)
}

func (s *Server) PostSkillVisibility(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSkillVisibility"

	var req api.SetVisibilityRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	skill, err := s.skillService.SetVisibility(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), *req.IsPublic)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, skill)
}

func (s *Server) PostSkillAvailability(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostSkillAvailability"

	var req api.SetAvailabilityRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	skill, err := s.skillService.SetAvailability(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), *req.IsAvailable)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, skill)
}

func (s *Server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.DeleteSkill"

	if err := s.skillService.DeleteSkill(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) GetSkillsSearch(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSkillsSearch"

	filter, err := bindSearchParams(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	listings, err := s.skillService.Search(r.Context(), filter)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.SearchResponse{Skills: listings})
}

func (s *Server) GetSkillsCategories(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetSkillsCategories"

	categories, err := s.skillService.ListCategories(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.CategoriesResponse{Categories: categories})
}
