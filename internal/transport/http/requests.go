package http

import (
	"fmt"
	"net/http"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// searchParams are the query parameters of GET /skills/search.
type searchParams struct {
	Q           *string
	Category    *string
	Proficiency *string
	Type        *string
	Location    *string
	Limit       *int
	Offset      *int
}

func bindSearchParams(r *http.Request) (domain.SkillFilter, error) {
	var p searchParams

	query := r.URL.Query()
	bindings := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"category", &p.Category},
		{"proficiency_level", &p.Proficiency},
		{"type", &p.Type},
		{"location", &p.Location},
		{"limit", &p.Limit},
		{"offset", &p.Offset},
	}

	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return domain.SkillFilter{}, fmt.Errorf("%w: query parameter '%s': %w", apperrors.ErrInvalidRequest, b.name, err)
		}
	}

	filter := domain.SkillFilter{
		Text:     p.Q,
		Category: p.Category,
		Location: p.Location,
	}

	if p.Proficiency != nil && *p.Proficiency != "" {
		level := domain.ProficiencyLevel(*p.Proficiency)
		filter.ProficiencyLevel = &level
	}

	if p.Type != nil && *p.Type != "" {
		t := domain.SkillType(*p.Type)
		filter.Type = &t
	}

	if p.Limit != nil {
		if *p.Limit < 0 {
			return domain.SkillFilter{}, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
		}
		filter.Limit = uint64(*p.Limit)
	}

	if p.Offset != nil {
		if *p.Offset < 0 {
			return domain.SkillFilter{}, fmt.Errorf("%w: offset must not be negative", apperrors.ErrValidation)
		}
		filter.Offset = uint64(*p.Offset)
	}

	return filter, nil
}

// bindDirection reads the optional 'direction' query parameter. Empty means the caller's default.
func bindDirection(r *http.Request) (string, error) {
	var direction *string

	if err := runtime.BindQueryParameter("form", true, false, "direction", r.URL.Query(), &direction); err != nil {
		return "", fmt.Errorf("%w: query parameter 'direction': %w", apperrors.ErrInvalidRequest, err)
	}

	if direction == nil {
		return "", nil
	}

	return *direction, nil
}
