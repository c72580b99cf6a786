// Package repository defines the interfaces for the data persistence layer.
// These interfaces abstract the underlying database implementation from the service layer.
package repository

import (
	"context"
	"time"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/jmoiron/sqlx"
)

// UserRepository defines the contract for user account and profile data.
type UserRepository interface {
	// CreateUser inserts a new user. ID, CreatedAt and UpdatedAt are filled from the database.
	// It returns an *apperrors.EmailTakenError if the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByID returns apperrors.ErrNotFound if the user does not exist.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// GetUserByEmail looks the user up by the normalized email.
	// It returns apperrors.ErrNotFound if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser applies the non-nil fields of upd and returns the updated row.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)

	// DeleteUser removes the user. Skills, swap requests and feedback go with it.
	DeleteUser(ctx context.Context, id string) error

	// GetUserByIDWithLock reads the user and acquires a row-level lock ("FOR UPDATE").
	GetUserByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.User, error)

	// SetRating overwrites the aggregate rating of a user inside tx.
	SetRating(ctx context.Context, tx *sqlx.Tx, id string, rating int) error
}

// SkillRepository defines the contract for skill listings.
type SkillRepository interface {
	// CreateSkill returns apperrors.ErrNotFound if the owner does not exist.
	CreateSkill(ctx context.Context, skill *domain.Skill) error

	GetSkillByID(ctx context.Context, id string) (*domain.Skill, error)

	// GetSkillsByOwner returns every skill of a user, newest first.
	// When publicOnly is set, hidden skills are left out.
	GetSkillsByOwner(ctx context.Context, userID string, publicOnly bool) ([]domain.Skill, error)

	UpdateSkill(ctx context.Context, id string, upd domain.SkillUpdate) (*domain.Skill, error)

	DeleteSkill(ctx context.Context, id string) error

	// SearchPublicSkills returns public skills matching every constraint in filter,
	// joined with the owner's public profile and ordered newest first.
	SearchPublicSkills(ctx context.Context, filter domain.SkillFilter) ([]domain.SkillListing, error)

	// GetCategories returns the distinct categories present across all skills, sorted.
	GetCategories(ctx context.Context) ([]string, error)
}

// SwapRepository defines the contract for swap requests.
type SwapRepository interface {
	// CreateSwap inserts a pending swap request.
	// It returns apperrors.ErrNotFound if a referenced user or skill does not exist.
	CreateSwap(ctx context.Context, swap *domain.SwapRequest) error

	GetSwapByID(ctx context.Context, id string) (*domain.SwapRequest, error)

	// GetSwapByIDWithLock reads the swap and locks the row until tx ends.
	GetSwapByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.SwapRequest, error)

	// GetSwapsByParticipant lists the swaps sent or received by userID, newest first.
	GetSwapsByParticipant(ctx context.Context, userID string, direction domain.SwapDirection) ([]domain.SwapRequest, error)

	// GetCompletedSwaps lists completed swaps involving userID, most recently updated first.
	GetCompletedSwaps(ctx context.Context, userID string) ([]domain.SwapRequest, error)

	UpdateSwapStatus(ctx context.Context, tx *sqlx.Tx, id string, status domain.SwapStatus, updatedAt time.Time) error

	DeleteSwap(ctx context.Context, tx *sqlx.Tx, id string) error
}

// FeedbackRepository defines the contract for post-swap feedback.
type FeedbackRepository interface {
	// CreateFeedback returns apperrors.ErrFeedbackExists if the author already rated this swap.
	CreateFeedback(ctx context.Context, tx *sqlx.Tx, fb *domain.Feedback) error

	GetFeedbackBySwap(ctx context.Context, swapID string) ([]domain.Feedback, error)

	GetFeedbackByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]domain.Feedback, error)

	// GetReceivedRatings returns every rating addressed to userID.
	// The ext argument allows this method to run inside a transaction or on the DB directly.
	GetReceivedRatings(ctx context.Context, ext sqlx.ExtContext, userID string) ([]int, error)
}
