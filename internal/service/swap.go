package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var swapTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "skillswap_swap_transitions_total",
		Help: "Number of committed swap request status changes",
	},
	[]string{"from", "to"},
)

type CreateSwapInput struct {
	RecipientID      string
	SkillOfferedID   string
	SkillRequestedID string
	Message          *string
}

type SwapService interface {
	Create(ctx context.Context, actorID string, in CreateSwapInput) (*api.SwapRequest, error)
	Get(ctx context.Context, actorID, id string) (*api.SwapRequest, error)
	Respond(ctx context.Context, actorID, id string, decision domain.SwapStatus) (*api.SwapRequest, error)
	Complete(ctx context.Context, actorID, id string) (*api.SwapRequest, error)
	Delete(ctx context.Context, actorID, id string) error
	ListByUser(ctx context.Context, userID string, direction domain.SwapDirection) ([]api.SwapRequest, error)
	ListCompleted(ctx context.Context, userID string) ([]api.SwapRequest, error)
}

type SwapServiceImpl struct {
	BaseService
	swapRepo  repository.SwapRepository
	skillRepo repository.SkillRepository
}

func NewSwapService(
	db Transactor,
	log *slog.Logger,
	swapRepo repository.SwapRepository,
	skillRepo repository.SkillRepository,
) *SwapServiceImpl {
	return &SwapServiceImpl{
		BaseService: NewBaseService(db, log),
		swapRepo:    swapRepo,
		skillRepo:   skillRepo,
	}
}

// Create opens a pending request from actorID. The offered skill must belong to the
// requester and the requested skill to the recipient.
func (s *SwapServiceImpl) Create(ctx context.Context, actorID string, in CreateSwapInput) (*api.SwapRequest, error) {
	const op = "internal.service.swap.Create"
	log := s.log.With(slog.String("op", op), slog.String("requester_id", actorID), slog.String("recipient_id", in.RecipientID))

	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	if in.RecipientID == actorID {
		return nil, fmt.Errorf("%w: cannot request a swap with yourself", apperrors.ErrValidation)
	}

	offered, err := s.skillRepo.GetSkillByID(ctx, in.SkillOfferedID)
	if err != nil {
		return nil, fmt.Errorf("%s: offered skill: %w", op, err)
	}

	if offered.UserID != actorID {
		return nil, fmt.Errorf("%w: offered skill must be one of your own skills", apperrors.ErrValidation)
	}

	requested, err := s.skillRepo.GetSkillByID(ctx, in.SkillRequestedID)
	if err != nil {
		return nil, fmt.Errorf("%s: requested skill: %w", op, err)
	}

	if requested.UserID != in.RecipientID {
		return nil, fmt.Errorf("%w: requested skill must belong to the recipient", apperrors.ErrValidation)
	}

	swap := &domain.SwapRequest{
		RequesterID:      actorID,
		RecipientID:      in.RecipientID,
		SkillOfferedID:   in.SkillOfferedID,
		SkillRequestedID: in.SkillRequestedID,
		Message:          blankToNil(in.Message),
		Status:           domain.SwapStatusPending,
	}

	if err := s.swapRepo.CreateSwap(ctx, swap); err != nil {
		return nil, fmt.Errorf("%s: failed to create swap request: %w", op, err)
	}

	log.Info("swap request created", slog.String("swap_id", swap.ID))

	return toAPISwap(swap), nil
}

// Get returns the request to its participants only.
func (s *SwapServiceImpl) Get(ctx context.Context, actorID, id string) (*api.SwapRequest, error) {
	const op = "internal.service.swap.Get"

	swap, err := s.swapRepo.GetSwapByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !swap.IsParticipant(actorID) {
		return nil, fmt.Errorf("%s: %w: not a participant of swap '%s'", op, apperrors.ErrForbidden, id)
	}

	return toAPISwap(swap), nil
}

// Respond lets the recipient accept or reject a pending request.
func (s *SwapServiceImpl) Respond(ctx context.Context, actorID, id string, decision domain.SwapStatus) (*api.SwapRequest, error) {
	const op = "internal.service.swap.Respond"

	if !decision.IsDecision() {
		return nil, fmt.Errorf("%w: decision must be accepted or rejected, got '%s'", apperrors.ErrValidation, decision)
	}

	return s.transition(ctx, op, actorID, id, decision, func(swap *domain.SwapRequest) error {
		if swap.RecipientID != actorID {
			return fmt.Errorf("%w: only the recipient can respond to swap '%s'", apperrors.ErrForbidden, id)
		}

		return nil
	})
}

// Complete lets either participant mark an accepted request as completed.
func (s *SwapServiceImpl) Complete(ctx context.Context, actorID, id string) (*api.SwapRequest, error) {
	const op = "internal.service.swap.Complete"

	return s.transition(ctx, op, actorID, id, domain.SwapStatusCompleted, func(swap *domain.SwapRequest) error {
		if !swap.IsParticipant(actorID) {
			return fmt.Errorf("%w: not a participant of swap '%s'", apperrors.ErrForbidden, id)
		}

		return nil
	})
}

// transition locks the request, checks the actor with authorize and moves it to next.
func (s *SwapServiceImpl) transition(
	ctx context.Context,
	op, actorID, id string,
	next domain.SwapStatus,
	authorize func(swap *domain.SwapRequest) error,
) (*api.SwapRequest, error) {
	log := s.log.With(slog.String("op", op), slog.String("swap_id", id), slog.String("actor_id", actorID))

	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var swap *domain.SwapRequest

	updatedAt := time.Now().UTC()

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		var err error

		swap, err = s.swapRepo.GetSwapByIDWithLock(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := authorize(swap); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if !swap.Status.CanTransitionTo(next) {
			return &apperrors.InvalidTransitionError{From: string(swap.Status), To: string(next)}
		}

		if err := s.swapRepo.UpdateSwapStatus(ctx, tx, id, next, updatedAt); err != nil {
			return fmt.Errorf("%s: failed to update status: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	from := swap.Status
	swap.Status = next
	swap.UpdatedAt = updatedAt

	swapTransitionsTotal.WithLabelValues(string(from), string(next)).Inc()
	log.Info("swap status changed", slog.String("from", string(from)), slog.String("to", string(next)))

	return toAPISwap(swap), nil
}

// Delete withdraws a request. Only the requester may do it, and only while it is pending.
func (s *SwapServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	const op = "internal.service.swap.Delete"
	log := s.log.With(slog.String("op", op), slog.String("swap_id", id))

	if actorID == "" {
		return apperrors.ErrUnauthorized
	}

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		swap, err := s.swapRepo.GetSwapByIDWithLock(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if swap.RequesterID != actorID {
			return fmt.Errorf("%s: %w: only the requester can withdraw swap '%s'", op, apperrors.ErrForbidden, id)
		}

		if swap.Status != domain.SwapStatusPending {
			return &apperrors.InvalidTransitionError{From: string(swap.Status), To: "deleted"}
		}

		if err := s.swapRepo.DeleteSwap(ctx, tx, id); err != nil {
			return fmt.Errorf("%s: failed to delete swap: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("swap request withdrawn")

	return nil
}

func (s *SwapServiceImpl) ListByUser(ctx context.Context, userID string, direction domain.SwapDirection) ([]api.SwapRequest, error) {
	const op = "internal.service.swap.ListByUser"

	direction = domain.SwapDirection(strings.ToLower(string(direction)))
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: direction must be sent or received", apperrors.ErrValidation)
	}

	swaps, err := s.swapRepo.GetSwapsByParticipant(ctx, userID, direction)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPISwaps(swaps), nil
}

func (s *SwapServiceImpl) ListCompleted(ctx context.Context, userID string) ([]api.SwapRequest, error) {
	const op = "internal.service.swap.ListCompleted"

	swaps, err := s.swapRepo.GetCompletedSwaps(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toAPISwaps(swaps), nil
}
