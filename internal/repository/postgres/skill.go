package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var skillColumns = []string{
	"id", "user_id", "name", "description", "category", "proficiency_level", "type",
	"is_public", "is_available", "created_at", "updated_at",
}

type SkillRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewSkillRepository(db *sqlx.DB, log *slog.Logger) *SkillRepository {
	return &SkillRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SkillRepository) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	const op = "internal.repository.postgres.CreateSkill"

	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}

	query, args, err := r.sq.Insert("skills").
		Columns("id", "user_id", "name", "description", "category", "proficiency_level", "type", "is_public", "is_available").
		Values(skill.ID, skill.UserID, skill.Name, skill.Description, skill.Category, skill.ProficiencyLevel, skill.Type,
			skill.IsPublic, skill.IsAvailable).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&skill.CreatedAt, &skill.UpdatedAt); err != nil {
		if pqCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%s: %w: owner with id '%s'", op, apperrors.ErrNotFound, skill.UserID)
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *SkillRepository) GetSkillByID(ctx context.Context, id string) (*domain.Skill, error) {
	const op = "internal.repository.postgres.GetSkillByID"

	query, args, err := r.sq.Select(skillColumns...).
		From("skills").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var skill domain.Skill
	if err := r.db.GetContext(ctx, &skill, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: skill with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get skill: %w", op, err)
	}

	return &skill, nil
}

func (r *SkillRepository) GetSkillsByOwner(ctx context.Context, userID string, publicOnly bool) ([]domain.Skill, error) {
	const op = "internal.repository.postgres.GetSkillsByOwner"

	where := sq.Eq{"user_id": userID}
	if publicOnly {
		where["is_public"] = true
	}

	query, args, err := r.sq.Select(skillColumns...).
		From("skills").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	skills := []domain.Skill{}
	if err := r.db.SelectContext(ctx, &skills, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return skills, nil
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, id string, upd domain.SkillUpdate) (*domain.Skill, error) {
	const op = "internal.repository.postgres.UpdateSkill"

	builder := r.sq.Update("skills").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Category != nil {
		builder = builder.Set("category", *upd.Category)
	}
	if upd.ProficiencyLevel != nil {
		builder = builder.Set("proficiency_level", *upd.ProficiencyLevel)
	}
	if upd.IsPublic != nil {
		builder = builder.Set("is_public", *upd.IsPublic)
	}
	if upd.IsAvailable != nil {
		builder = builder.Set("is_available", *upd.IsAvailable)
	}

	query, args, err := builder.Suffix("RETURNING " + joinColumns(skillColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	var skill domain.Skill
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&skill); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: skill with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	return &skill, nil
}

func (r *SkillRepository) DeleteSkill(ctx context.Context, id string) error {
	const op = "internal.repository.postgres.DeleteSkill"

	query, args, err := r.sq.Delete("skills").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: skill with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}

func (r *SkillRepository) SearchPublicSkills(ctx context.Context, filter domain.SkillFilter) ([]domain.SkillListing, error) {
	const op = "internal.repository.postgres.SearchPublicSkills"
	log := r.log.With(slog.String("op", op))

	query, args, err := buildSearchQuery(r.sq, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	log.Debug("searching skills", slog.String("query", query), slog.Int("args", len(args)))

	listings := []domain.SkillListing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return listings, nil
}

// buildSearchQuery turns the filter into one conjunction. Absent fields add no predicate.
func buildSearchQuery(b sq.StatementBuilderType, filter domain.SkillFilter) sq.SelectBuilder {
	conds := sq.And{sq.Eq{"s.is_public": true}}

	if filter.Text != nil {
		pattern := containsPattern(*filter.Text)
		conds = append(conds, sq.Or{
			sq.ILike{"s.name": pattern},
			sq.ILike{"s.description": pattern},
			sq.ILike{"s.category": pattern},
		})
	}
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"s.category": *filter.Category})
	}
	if filter.ProficiencyLevel != nil {
		conds = append(conds, sq.Eq{"s.proficiency_level": *filter.ProficiencyLevel})
	}
	if filter.Type != nil {
		conds = append(conds, sq.Eq{"s.type": *filter.Type})
	}
	if filter.Location != nil {
		conds = append(conds, sq.ILike{"u.location": containsPattern(*filter.Location)})
	}

	cols := make([]string, 0, len(skillColumns)+5)
	for _, c := range skillColumns {
		cols = append(cols, "s."+c)
	}
	cols = append(cols,
		"u.first_name AS owner_first_name",
		"u.last_name AS owner_last_name",
		"u.profile_photo AS owner_profile_photo",
		"u.location AS owner_location",
		"u.rating AS owner_rating",
	)

	builder := b.Select(cols...).
		From("skills s").
		Join("users u ON u.id = s.user_id").
		Where(conds).
		OrderBy("s.created_at DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	return builder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE substring pattern with the wildcard characters of s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *SkillRepository) GetCategories(ctx context.Context) ([]string, error) {
	const op = "internal.repository.postgres.GetCategories"

	query, args, err := r.sq.Select("DISTINCT category").
		From("skills").
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return categories, nil
}
