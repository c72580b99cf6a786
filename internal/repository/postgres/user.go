package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{
	"id", "first_name", "last_name", "email", "password_hash", "profile_photo", "bio",
	"location", "is_public", "availability", "rating", "created_at", "updated_at",
}

type UserRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (ur *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	const op = "internal.repository.postgres.CreateUser"

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query, args, err := ur.sq.Insert("users").
		Columns("id", "first_name", "last_name", "email", "password_hash", "profile_photo", "bio",
			"location", "is_public", "availability").
		Values(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.ProfilePhoto, user.Bio,
			user.Location, user.IsPublic, user.Availability).
		Suffix("RETURNING rating, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	err = ur.db.QueryRowxContext(ctx, query, args...).
		Scan(&user.Rating, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pqCode(err) == pgUniqueViolation {
			return &apperrors.EmailTakenError{Email: user.Email}
		}

		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	ur.log.Info("user created", slog.String("op", op), slog.String("user_id", user.ID))

	return nil
}

func (ur *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	const op = "internal.repository.postgres.GetUserByID"

	return ur.getUser(ctx, ur.db, op, sq.Eq{"id": id}, false)
}

func (ur *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "internal.repository.postgres.GetUserByEmail"

	return ur.getUser(ctx, ur.db, op, sq.Eq{"email": email}, false)
}

func (ur *UserRepository) GetUserByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.User, error) {
	const op = "internal.repository.postgres.GetUserByIDWithLock"

	return ur.getUser(ctx, tx, op, sq.Eq{"id": id}, true)
}

func (ur *UserRepository) getUser(ctx context.Context, q sqlx.QueryerContext, op string, where sq.Eq, lock bool) (*domain.User, error) {
	builder := ur.sq.Select(userColumns...).
		From("users").
		Where(where)

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var user domain.User
	if err := sqlx.GetContext(ctx, q, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: user %v", op, apperrors.ErrNotFound, where)
		}

		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return &user, nil
}

func (ur *UserRepository) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	const op = "internal.repository.postgres.UpdateUser"

	builder := ur.sq.Update("users").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if upd.FirstName != nil {
		builder = builder.Set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		builder = builder.Set("last_name", *upd.LastName)
	}
	if upd.ProfilePhoto != nil {
		builder = builder.Set("profile_photo", *upd.ProfilePhoto)
	}
	if upd.Bio != nil {
		builder = builder.Set("bio", *upd.Bio)
	}
	if upd.Location != nil {
		builder = builder.Set("location", *upd.Location)
	}
	if upd.IsPublic != nil {
		builder = builder.Set("is_public", *upd.IsPublic)
	}
	if upd.Availability != nil {
		builder = builder.Set("availability", *upd.Availability)
	}

	query, args, err := builder.Suffix("RETURNING " + joinColumns(userColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	var user domain.User
	if err := ur.db.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	return &user, nil
}

func (ur *UserRepository) DeleteUser(ctx context.Context, id string) error {
	const op = "internal.repository.postgres.DeleteUser"

	query, args, err := ur.sq.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := ur.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}

func (ur *UserRepository) SetRating(ctx context.Context, tx *sqlx.Tx, id string, rating int) error {
	const op = "internal.repository.postgres.SetRating"

	query, args, err := ur.sq.Update("users").
		Set("rating", rating).
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
		return fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}
