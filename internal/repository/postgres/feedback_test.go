//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRepository_Flow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	fx := setupSwapTest(t)
	swaps := NewSwapRepository(testDB, logger)
	repo := NewFeedbackRepository(testDB, logger)
	ctx := context.Background()

	swap := &domain.SwapRequest{
		RequesterID: fx.ada.ID, RecipientID: fx.bob.ID,
		SkillOfferedID: fx.guitar.ID, SkillRequestedID: fx.react.ID,
		Status: domain.SwapStatusCompleted,
	}
	require.NoError(t, swaps.CreateSwap(ctx, swap))

	tx, err := testDB.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateFeedback(ctx, tx, &domain.Feedback{
		SwapID: swap.ID, FromUserID: fx.ada.ID, ToUserID: fx.bob.ID, Rating: 5, Comment: "Great!",
	}))
	require.NoError(t, repo.CreateFeedback(ctx, tx, &domain.Feedback{
		SwapID: swap.ID, FromUserID: fx.bob.ID, ToUserID: fx.ada.ID, Rating: 4, Comment: "Good",
	}))

	ratings, err := repo.GetReceivedRatings(ctx, tx, fx.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ratings)
	require.NoError(t, tx.Commit())

	bySwap, err := repo.GetFeedbackBySwap(ctx, swap.ID)
	require.NoError(t, err)
	assert.Len(t, bySwap, 2)

	given, err := repo.GetFeedbackByUser(ctx, fx.ada.ID, domain.FeedbackDirectionGiven)
	require.NoError(t, err)
	require.Len(t, given, 1)
	assert.Equal(t, fx.bob.ID, given[0].ToUserID)

	received, err := repo.GetFeedbackByUser(ctx, fx.ada.ID, domain.FeedbackDirectionReceived)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, 4, received[0].Rating)

	ratings, err = repo.GetReceivedRatings(ctx, testDB, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestFeedbackRepository_Duplicate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	fx := setupSwapTest(t)
	swaps := NewSwapRepository(testDB, logger)
	repo := NewFeedbackRepository(testDB, logger)
	ctx := context.Background()

	swap := &domain.SwapRequest{
		RequesterID: fx.ada.ID, RecipientID: fx.bob.ID,
		SkillOfferedID: fx.guitar.ID, SkillRequestedID: fx.react.ID,
		Status: domain.SwapStatusCompleted,
	}
	require.NoError(t, swaps.CreateSwap(ctx, swap))

	fb := func() *domain.Feedback {
		return &domain.Feedback{SwapID: swap.ID, FromUserID: fx.ada.ID, ToUserID: fx.bob.ID, Rating: 3}
	}

	tx, err := testDB.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateFeedback(ctx, tx, fb()))
	require.NoError(t, tx.Commit())

	tx, err = testDB.Beginx()
	require.NoError(t, err)
	err = repo.CreateFeedback(ctx, tx, fb())
	assert.ErrorIs(t, err, apperrors.ErrFeedbackExists)
	require.NoError(t, tx.Rollback())
}
