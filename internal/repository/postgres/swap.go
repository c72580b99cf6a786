package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var swapColumns = []string{
	"id", "requester_id", "recipient_id", "skill_offered_id", "skill_requested_id",
	"message", "status", "created_at", "updated_at",
}

type SwapRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewSwapRepository(db *sqlx.DB, log *slog.Logger) *SwapRepository {
	return &SwapRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SwapRepository) CreateSwap(ctx context.Context, swap *domain.SwapRequest) error {
	const op = "internal.repository.postgres.CreateSwap"

	if swap.ID == "" {
		swap.ID = uuid.NewString()
	}
	if swap.Status == "" {
		swap.Status = domain.SwapStatusPending
	}

	query, args, err := r.sq.Insert("swap_requests").
		Columns("id", "requester_id", "recipient_id", "skill_offered_id", "skill_requested_id", "message", "status").
		Values(swap.ID, swap.RequesterID, swap.RecipientID, swap.SkillOfferedID, swap.SkillRequestedID, swap.Message, swap.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&swap.CreatedAt, &swap.UpdatedAt); err != nil {
		if pqCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%s: %w: referenced user or skill", op, apperrors.ErrNotFound)
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (r *SwapRepository) GetSwapByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	const op = "internal.repository.postgres.GetSwapByID"

	return r.getSwap(ctx, r.db, op, id, false)
}

func (r *SwapRepository) GetSwapByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.SwapRequest, error) {
	const op = "internal.repository.postgres.GetSwapByIDWithLock"

	return r.getSwap(ctx, tx, op, id, true)
}

func (r *SwapRepository) getSwap(ctx context.Context, q sqlx.QueryerContext, op, id string, lock bool) (*domain.SwapRequest, error) {
	builder := r.sq.Select(swapColumns...).
		From("swap_requests").
		Where(sq.Eq{"id": id})

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var swap domain.SwapRequest
	if err := sqlx.GetContext(ctx, q, &swap, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: swap request with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get swap request: %w", op, err)
	}

	return &swap, nil
}

func (r *SwapRepository) GetSwapsByParticipant(ctx context.Context, userID string, direction domain.SwapDirection) ([]domain.SwapRequest, error) {
	const op = "internal.repository.postgres.GetSwapsByParticipant"

	column := "requester_id"
	if direction == domain.SwapDirectionReceived {
		column = "recipient_id"
	}

	query, args, err := r.sq.Select(swapColumns...).
		From("swap_requests").
		Where(sq.Eq{column: userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	swaps := []domain.SwapRequest{}
	if err := r.db.SelectContext(ctx, &swaps, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return swaps, nil
}

func (r *SwapRepository) GetCompletedSwaps(ctx context.Context, userID string) ([]domain.SwapRequest, error) {
	const op = "internal.repository.postgres.GetCompletedSwaps"

	query, args, err := r.sq.Select(swapColumns...).
		From("swap_requests").
		Where(sq.And{
			sq.Eq{"status": domain.SwapStatusCompleted},
			sq.Or{sq.Eq{"requester_id": userID}, sq.Eq{"recipient_id": userID}},
		}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	swaps := []domain.SwapRequest{}
	if err := r.db.SelectContext(ctx, &swaps, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return swaps, nil
}

func (r *SwapRepository) UpdateSwapStatus(ctx context.Context, tx *sqlx.Tx, id string, status domain.SwapStatus, updatedAt time.Time) error {
	const op = "internal.repository.postgres.UpdateSwapStatus"

	query, args, err := r.sq.Update("swap_requests").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: swap request with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}

func (r *SwapRepository) DeleteSwap(ctx context.Context, tx *sqlx.Tx, id string) error {
	const op = "internal.repository.postgres.DeleteSwap"

	query, args, err := r.sq.Delete("swap_requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: swap request with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}
