package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/cache"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/YusovID/skillswap/pkg/logger/sl"
)

type CreateSkillInput struct {
	Name             string
	Description      string
	Category         string
	ProficiencyLevel domain.ProficiencyLevel
	Type             domain.SkillType
	// IsPublic and IsAvailable default to true when nil.
	IsPublic    *bool
	IsAvailable *bool
}

type UpdateSkillInput struct {
	Name             *string
	Description      *string
	Category         *string
	ProficiencyLevel *domain.ProficiencyLevel
	IsPublic         *bool
	IsAvailable      *bool
}

type SkillService interface {
	CreateSkill(ctx context.Context, actorID string, in CreateSkillInput) (*api.Skill, error)
	GetSkill(ctx context.Context, actorID, id string) (*api.Skill, error)
	ListUserSkills(ctx context.Context, actorID, ownerID string) ([]api.Skill, error)
	UpdateSkill(ctx context.Context, actorID, id string, in UpdateSkillInput) (*api.Skill, error)
	SetVisibility(ctx context.Context, actorID, id string, public bool) (*api.Skill, error)
	SetAvailability(ctx context.Context, actorID, id string, available bool) (*api.Skill, error)
	DeleteSkill(ctx context.Context, actorID, id string) error
	Search(ctx context.Context, filter domain.SkillFilter) ([]api.SkillListing, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type SkillServiceImpl struct {
	log        *slog.Logger
	skillRepo  repository.SkillRepository
	categories cache.CategoryCache
}

func NewSkillService(log *slog.Logger, skillRepo repository.SkillRepository, categories cache.CategoryCache) *SkillServiceImpl {
	return &SkillServiceImpl{
		log:        log,
		skillRepo:  skillRepo,
		categories: categories,
	}
}

func (s *SkillServiceImpl) CreateSkill(ctx context.Context, actorID string, in CreateSkillInput) (*api.Skill, error) {
	const op = "internal.service.skill.CreateSkill"
	log := s.log.With(slog.String("op", op), slog.String("user_id", actorID))

	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	skill := &domain.Skill{
		UserID:           actorID,
		Name:             strings.TrimSpace(in.Name),
		Description:      strings.TrimSpace(in.Description),
		Category:         strings.TrimSpace(in.Category),
		ProficiencyLevel: in.ProficiencyLevel,
		Type:             in.Type,
		IsPublic:         boolOr(in.IsPublic, true),
		IsAvailable:      boolOr(in.IsAvailable, true),
	}

	switch {
	case skill.Name == "":
		return nil, fmt.Errorf("%w: skill name is required", apperrors.ErrValidation)
	case skill.Category == "":
		return nil, fmt.Errorf("%w: skill category is required", apperrors.ErrValidation)
	case !skill.ProficiencyLevel.IsValid():
		return nil, fmt.Errorf("%w: unknown proficiency level '%s'", apperrors.ErrValidation, skill.ProficiencyLevel)
	case !skill.Type.IsValid():
		return nil, fmt.Errorf("%w: unknown skill type '%s'", apperrors.ErrValidation, skill.Type)
	}

	if err := s.skillRepo.CreateSkill(ctx, skill); err != nil {
		return nil, fmt.Errorf("%s: failed to create skill: %w", op, err)
	}

	s.invalidateCategories(ctx, log)
	log.Info("skill created", slog.String("skill_id", skill.ID))

	return toAPISkill(skill), nil
}

// GetSkill hides private skills from everyone except their owner.
func (s *SkillServiceImpl) GetSkill(ctx context.Context, actorID, id string) (*api.Skill, error) {
	const op = "internal.service.skill.GetSkill"

	skill, err := s.skillRepo.GetSkillByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !skill.IsPublic && skill.UserID != actorID {
		return nil, fmt.Errorf("%s: %w: skill with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return toAPISkill(skill), nil
}

// ListUserSkills returns all of the owner's skills to the owner and only public ones to anybody else.
func (s *SkillServiceImpl) ListUserSkills(ctx context.Context, actorID, ownerID string) ([]api.Skill, error) {
	const op = "internal.service.skill.ListUserSkills"

	skills, err := s.skillRepo.GetSkillsByOwner(ctx, ownerID, actorID != ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPISkills(skills), nil
}

func (s *SkillServiceImpl) UpdateSkill(ctx context.Context, actorID, id string, in UpdateSkillInput) (*api.Skill, error) {
	const op = "internal.service.skill.UpdateSkill"
	log := s.log.With(slog.String("op", op), slog.String("skill_id", id))

	upd := domain.SkillUpdate{
		Name:             trimmed(in.Name),
		Description:      trimmed(in.Description),
		Category:         trimmed(in.Category),
		ProficiencyLevel: in.ProficiencyLevel,
		IsPublic:         in.IsPublic,
		IsAvailable:      in.IsAvailable,
	}

	switch {
	case upd.Name != nil && *upd.Name == "":
		return nil, fmt.Errorf("%w: skill name cannot be empty", apperrors.ErrValidation)
	case upd.Category != nil && *upd.Category == "":
		return nil, fmt.Errorf("%w: skill category cannot be empty", apperrors.ErrValidation)
	case upd.ProficiencyLevel != nil && !upd.ProficiencyLevel.IsValid():
		return nil, fmt.Errorf("%w: unknown proficiency level '%s'", apperrors.ErrValidation, *upd.ProficiencyLevel)
	}

	current, err := s.ownedSkill(ctx, op, actorID, id)
	if err != nil {
		return nil, err
	}

	if upd.IsEmpty() {
		return toAPISkill(current), nil
	}

	skill, err := s.skillRepo.UpdateSkill(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update skill: %w", op, err)
	}

	if upd.Category != nil {
		s.invalidateCategories(ctx, log)
	}

	return toAPISkill(skill), nil
}

func (s *SkillServiceImpl) SetVisibility(ctx context.Context, actorID, id string, public bool) (*api.Skill, error) {
	return s.UpdateSkill(ctx, actorID, id, UpdateSkillInput{IsPublic: &public})
}

func (s *SkillServiceImpl) SetAvailability(ctx context.Context, actorID, id string, available bool) (*api.Skill, error) {
	return s.UpdateSkill(ctx, actorID, id, UpdateSkillInput{IsAvailable: &available})
}

func (s *SkillServiceImpl) DeleteSkill(ctx context.Context, actorID, id string) error {
	const op = "internal.service.skill.DeleteSkill"
	log := s.log.With(slog.String("op", op), slog.String("skill_id", id))

	if _, err := s.ownedSkill(ctx, op, actorID, id); err != nil {
		return err
	}

	if err := s.skillRepo.DeleteSkill(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete skill: %w", op, err)
	}

	s.invalidateCategories(ctx, log)
	log.Info("skill deleted")

	return nil
}

// Search normalizes the filter: blank strings count as absent and the limit is capped.
func (s *SkillServiceImpl) Search(ctx context.Context, filter domain.SkillFilter) ([]api.SkillListing, error) {
	const op = "internal.service.skill.Search"

	filter.Text = blankToNil(filter.Text)
	filter.Category = blankToNil(filter.Category)
	filter.Location = blankToNil(filter.Location)

	if filter.ProficiencyLevel != nil && !filter.ProficiencyLevel.IsValid() {
		return nil, fmt.Errorf("%w: unknown proficiency level '%s'", apperrors.ErrValidation, *filter.ProficiencyLevel)
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown skill type '%s'", apperrors.ErrValidation, *filter.Type)
	}
	if filter.Limit > domain.MaxSearchLimit {
		filter.Limit = domain.MaxSearchLimit
	}

	listings, err := s.skillRepo.SearchPublicSkills(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPISkillListings(listings), nil
}

// ListCategories reads through the category cache. Cache failures fall back to the database.
func (s *SkillServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	const op = "internal.service.skill.ListCategories"
	log := s.log.With(slog.String("op", op))

	cached, found, err := s.categories.Get(ctx)
	if err != nil {
		log.Warn("category cache read failed", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	categories, err := s.skillRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.categories.Set(ctx, categories); err != nil {
		log.Warn("category cache write failed", sl.Err(err))
	}

	return categories, nil
}

func (s *SkillServiceImpl) ownedSkill(ctx context.Context, op, actorID, id string) (*domain.Skill, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	skill, err := s.skillRepo.GetSkillByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if skill.UserID != actorID {
		return nil, fmt.Errorf("%s: %w: skill '%s' belongs to another user", op, apperrors.ErrForbidden, id)
	}

	return skill, nil
}

func (s *SkillServiceImpl) invalidateCategories(ctx context.Context, log *slog.Logger) {
	if err := s.categories.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate category cache", sl.Err(err))
	}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}

	return *b
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}

	return &t
}
