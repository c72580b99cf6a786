package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/jmoiron/sqlx"
)

type SubmitFeedbackInput struct {
	SwapID     string
	FromUserID string
	ToUserID   string
	Rating     int
	Comment    string
}

type FeedbackService interface {
	Submit(ctx context.Context, in SubmitFeedbackInput) (*api.Feedback, error)
	RecomputeRating(ctx context.Context, userID string) (int, error)
	ListBySwap(ctx context.Context, swapID string) ([]api.Feedback, error)
	ListByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]api.Feedback, error)
}

type FeedbackServiceImpl struct {
	BaseService
	feedbackRepo repository.FeedbackRepository
	swapRepo     repository.SwapRepository
	userRepo     repository.UserRepository
}

func NewFeedbackService(
	db Transactor,
	log *slog.Logger,
	feedbackRepo repository.FeedbackRepository,
	swapRepo repository.SwapRepository,
	userRepo repository.UserRepository,
) *FeedbackServiceImpl {
	return &FeedbackServiceImpl{
		BaseService:  NewBaseService(db, log),
		feedbackRepo: feedbackRepo,
		swapRepo:     swapRepo,
		userRepo:     userRepo,
	}
}

// Submit records one participant's rating of the other on a completed swap and
// refreshes the target's aggregate rating in the same transaction.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, in SubmitFeedbackInput) (*api.Feedback, error) {
	const op = "internal.service.feedback.Submit"
	log := s.log.With(slog.String("op", op), slog.String("swap_id", in.SwapID), slog.String("to_user_id", in.ToUserID))

	if in.FromUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", apperrors.ErrValidation, domain.MinRating, domain.MaxRating)
	}

	swap, err := s.swapRepo.GetSwapByID(ctx, in.SwapID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !swap.IsParticipant(in.FromUserID) {
		return nil, fmt.Errorf("%s: %w: not a participant of swap '%s'", op, apperrors.ErrForbidden, in.SwapID)
	}

	if swap.Counterparty(in.FromUserID) != in.ToUserID {
		return nil, fmt.Errorf("%w: feedback must be addressed to the other participant", apperrors.ErrValidation)
	}

	if swap.Status != domain.SwapStatusCompleted {
		return nil, fmt.Errorf("%w: feedback can only be left on completed swaps", apperrors.ErrValidation)
	}

	fb := &domain.Feedback{
		SwapID:     in.SwapID,
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}

	var rating int

	err = s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if _, err := s.userRepo.GetUserByIDWithLock(ctx, tx, in.ToUserID); err != nil {
			return fmt.Errorf("%s: failed to lock target user: %w", op, err)
		}

		if err := s.feedbackRepo.CreateFeedback(ctx, tx, fb); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		var err error

		rating, err = s.recomputeRating(ctx, tx, in.ToUserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("feedback submitted", slog.Int("rating", in.Rating), slog.Int("aggregate_rating", rating))

	return toAPIFeedback(fb), nil
}

// RecomputeRating refreshes a user's aggregate rating in its own transaction.
func (s *FeedbackServiceImpl) RecomputeRating(ctx context.Context, userID string) (int, error) {
	const op = "internal.service.feedback.RecomputeRating"

	var rating int

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		user, err := s.userRepo.GetUserByIDWithLock(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		rating = user.Rating

		recomputed, err := s.recomputeRating(ctx, tx, userID)
		if err != nil {
			return err
		}

		if recomputed != 0 {
			rating = recomputed
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return rating, nil
}

// recomputeRating writes the rounded mean of every rating userID received. With no feedback
// the stored value is left untouched and 0 is returned.
func (s *FeedbackServiceImpl) recomputeRating(ctx context.Context, tx *sqlx.Tx, userID string) (int, error) {
	const op = "internal.service.feedback.recomputeRating"

	ratings, err := s.feedbackRepo.GetReceivedRatings(ctx, tx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rating, ok := domain.AggregateRating(ratings)
	if !ok {
		return 0, nil
	}

	if err := s.userRepo.SetRating(ctx, tx, userID, rating); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return rating, nil
}

func (s *FeedbackServiceImpl) ListBySwap(ctx context.Context, swapID string) ([]api.Feedback, error) {
	const op = "internal.service.feedback.ListBySwap"

	if _, err := s.swapRepo.GetSwapByID(ctx, swapID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	list, err := s.feedbackRepo.GetFeedbackBySwap(ctx, swapID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPIFeedbackList(list), nil
}

func (s *FeedbackServiceImpl) ListByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]api.Feedback, error) {
	const op = "internal.service.feedback.ListByUser"

	if direction == "" {
		direction = domain.FeedbackDirectionReceived
	}

	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: direction must be given or received", apperrors.ErrValidation)
	}

	list, err := s.feedbackRepo.GetFeedbackByUser(ctx, userID, direction)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPIFeedbackList(list), nil
}
