//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	truncateTables(t, testDB)
	repo := NewUserRepository(testDB, logger)
	ctx := context.Background()

	user := createTestUser(t, repo, "Ada", "ada@example.com", strPtr("London"))
	assert.NotEmpty(t, user.ID)
	assert.Zero(t, user.Rating)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, domain.DefaultAvailability(), byEmail.Availability)

	again, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, byEmail, again)

	bio := "Mathematician"
	avail := domain.Availability{Weekdays: true, Custom: "after 6pm"}
	updated, err := repo.UpdateUser(ctx, user.ID, domain.UserUpdate{Bio: &bio, Availability: &avail})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Mathematician", *updated.Bio)
	assert.Equal(t, avail, updated.Availability)
	assert.Equal(t, "Ada", updated.FirstName)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))

	_, err = repo.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	truncateTables(t, testDB)
	repo := NewUserRepository(testDB, logger)

	createTestUser(t, repo, "Ada", "ada@example.com", nil)

	err := repo.CreateUser(context.Background(), &domain.User{
		FirstName: "Other", LastName: "Ada", Email: "ada@example.com", PasswordHash: "x",
		Availability: domain.DefaultAvailability(),
	})
	require.Error(t, err)

	var emailErr *apperrors.EmailTakenError
	assert.True(t, errors.As(err, &emailErr))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUserRepository_SetRatingWithLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	truncateTables(t, testDB)
	repo := NewUserRepository(testDB, logger)
	ctx := context.Background()

	user := createTestUser(t, repo, "Ada", "ada@example.com", nil)

	tx, err := testDB.Beginx()
	require.NoError(t, err)

	locked, err := repo.GetUserByIDWithLock(ctx, tx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, locked.ID)

	require.NoError(t, repo.SetRating(ctx, tx, user.ID, 4))
	require.NoError(t, tx.Commit())

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
}
