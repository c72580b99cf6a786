package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var feedbackColumns = []string{"id", "swap_id", "from_user_id", "to_user_id", "rating", "comment", "created_at"}

type FeedbackRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewFeedbackRepository(db *sqlx.DB, log *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, tx *sqlx.Tx, fb *domain.Feedback) error {
	const op = "internal.repository.postgres.CreateFeedback"

	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}

	query, args, err := r.sq.Insert("feedback").
		Columns("id", "swap_id", "from_user_id", "to_user_id", "rating", "comment").
		Values(fb.ID, fb.SwapID, fb.FromUserID, fb.ToUserID, fb.Rating, fb.Comment).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&fb.CreatedAt); err != nil {
		switch pqCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: swap '%s' from user '%s'", op, apperrors.ErrFeedbackExists, fb.SwapID, fb.FromUserID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: referenced swap or user", op, apperrors.ErrNotFound)
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *FeedbackRepository) GetFeedbackBySwap(ctx context.Context, swapID string) ([]domain.Feedback, error) {
	const op = "internal.repository.postgres.GetFeedbackBySwap"

	query, args, err := r.sq.Select(feedbackColumns...).
		From("feedback").
		Where(sq.Eq{"swap_id": swapID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	feedback := []domain.Feedback{}
	if err := r.db.SelectContext(ctx, &feedback, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return feedback, nil
}

func (r *FeedbackRepository) GetFeedbackByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]domain.Feedback, error) {
	const op = "internal.repository.postgres.GetFeedbackByUser"

	column := "to_user_id"
	if direction == domain.FeedbackDirectionGiven {
		column = "from_user_id"
	}

	query, args, err := r.sq.Select(feedbackColumns...).
		From("feedback").
		Where(sq.Eq{column: userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	feedback := []domain.Feedback{}
	if err := r.db.SelectContext(ctx, &feedback, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return feedback, nil
}

func (r *FeedbackRepository) GetReceivedRatings(ctx context.Context, ext sqlx.ExtContext, userID string) ([]int, error) {
	const op = "internal.repository.postgres.GetReceivedRatings"

	query, args, err := r.sq.Select("rating").
		From("feedback").
		Where(sq.Eq{"to_user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var ratings []int
	if err := sqlx.SelectContext(ctx, ext, &ratings, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select ratings: %w", op, err)
	}

	return ratings, nil
}
