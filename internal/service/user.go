package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/auth"
	"github.com/YusovID/skillswap/internal/cache"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/YusovID/skillswap/pkg/logger/sl"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	ProfilePhoto *string
	Bio          *string
	Location     *string
	IsPublic     *bool
	Availability *api.Availability
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	GetProfile(ctx context.Context, actorID, userID string) (*api.User, error)
	UpdateProfile(ctx context.Context, actorID string, in UpdateProfileInput) (*api.User, error)
	DeleteAccount(ctx context.Context, actorID string) error
}

type UserServiceImpl struct {
	log        *slog.Logger
	userRepo   repository.UserRepository
	hasher     PasswordHasher
	tokens     TokenIssuer
	categories cache.CategoryCache
}

func NewUserService(
	log *slog.Logger,
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	categories cache.CategoryCache,
) *UserServiceImpl {
	return &UserServiceImpl{
		log:        log,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
		categories: categories,
	}
}

// NormalizeEmail trims and lower-cases an address before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, in RegisterInput) (*api.User, error) {
	const op = "internal.service.user.Register"

	email := NormalizeEmail(in.Email)
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: first name, email and password are required", apperrors.ErrValidation)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: hash,
		IsPublic:     true,
		Availability: domain.DefaultAvailability(),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, err
		}

		return nil, fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	return toAPIUser(user, true), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	const op = "internal.service.user.Login"
	log := s.log.With(slog.String("op", op))

	user, err := s.userRepo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return nil, apperrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%s: failed to compare password: %w", op, err)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	return &api.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *toAPIUser(user, true),
	}, nil
}

// GetProfile hides private profiles from everyone except their owner.
func (s *UserServiceImpl) GetProfile(ctx context.Context, actorID, userID string) (*api.User, error) {
	const op = "internal.service.user.GetProfile"

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	owner := actorID != "" && actorID == user.ID
	if !user.IsPublic && !owner {
		return nil, fmt.Errorf("%s: %w: user with id '%s'", op, apperrors.ErrNotFound, userID)
	}

	return toAPIUser(user, owner), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actorID string, in UpdateProfileInput) (*api.User, error) {
	const op = "internal.service.user.UpdateProfile"

	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	upd := domain.UserUpdate{
		FirstName:    trimmed(in.FirstName),
		LastName:     trimmed(in.LastName),
		ProfilePhoto: in.ProfilePhoto,
		Bio:          in.Bio,
		Location:     trimmed(in.Location),
		IsPublic:     in.IsPublic,
	}

	if in.Availability != nil {
		a := fromAPIAvailability(*in.Availability)
		upd.Availability = &a
	}

	if upd.FirstName != nil && *upd.FirstName == "" {
		return nil, fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidation)
	}

	if upd.IsEmpty() {
		user, err := s.userRepo.GetUserByID(ctx, actorID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return toAPIUser(user, true), nil
	}

	user, err := s.userRepo.UpdateUser(ctx, actorID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update user: %w", op, err)
	}

	return toAPIUser(user, true), nil
}

// DeleteAccount removes the user together with their skills, swaps and feedback.
func (s *UserServiceImpl) DeleteAccount(ctx context.Context, actorID string) error {
	const op = "internal.service.user.DeleteAccount"
	log := s.log.With(slog.String("op", op), slog.String("user_id", actorID))

	if actorID == "" {
		return apperrors.ErrUnauthorized
	}

	if err := s.userRepo.DeleteUser(ctx, actorID); err != nil {
		return fmt.Errorf("%s: failed to delete user: %w", op, err)
	}

	if err := s.categories.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate category cache", sl.Err(err))
	}

	log.Info("account deleted")

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)

	return &t
}
