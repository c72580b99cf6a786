package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/YusovID/skillswap/internal/cache"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type TransactorMock struct {
	mock.Mock
}

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	var tx *sqlx.Tx

	args := m.Called(ctx, opts)
	if args.Get(0) != nil {
		tx = args.Get(0).(*sqlx.Tx)
	}

	return tx, args.Error(1)
}

type UserRepositoryMock struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepositoryMock)(nil)

func (m *UserRepositoryMock) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepositoryMock) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepositoryMock) GetUserByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.User, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepositoryMock) SetRating(ctx context.Context, tx *sqlx.Tx, id string, rating int) error {
	args := m.Called(ctx, tx, id, rating)
	return args.Error(0)
}

type SkillRepositoryMock struct {
	mock.Mock
}

var _ repository.SkillRepository = (*SkillRepositoryMock)(nil)

func (m *SkillRepositoryMock) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *SkillRepositoryMock) GetSkillByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *SkillRepositoryMock) GetSkillsByOwner(ctx context.Context, userID string, publicOnly bool) ([]domain.Skill, error) {
	args := m.Called(ctx, userID, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *SkillRepositoryMock) UpdateSkill(ctx context.Context, id string, upd domain.SkillUpdate) (*domain.Skill, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *SkillRepositoryMock) DeleteSkill(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SkillRepositoryMock) SearchPublicSkills(ctx context.Context, filter domain.SkillFilter) ([]domain.SkillListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.SkillListing), args.Error(1)
}

func (m *SkillRepositoryMock) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

type SwapRepositoryMock struct {
	mock.Mock
}

var _ repository.SwapRepository = (*SwapRepositoryMock)(nil)

func (m *SwapRepositoryMock) CreateSwap(ctx context.Context, swap *domain.SwapRequest) error {
	args := m.Called(ctx, swap)
	return args.Error(0)
}

func (m *SwapRepositoryMock) GetSwapByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.SwapRequest), args.Error(1)
}

func (m *SwapRepositoryMock) GetSwapByIDWithLock(ctx context.Context, tx *sqlx.Tx, id string) (*domain.SwapRequest, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.SwapRequest), args.Error(1)
}

func (m *SwapRepositoryMock) GetSwapsByParticipant(ctx context.Context, userID string, direction domain.SwapDirection) ([]domain.SwapRequest, error) {
	args := m.Called(ctx, userID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.SwapRequest), args.Error(1)
}

func (m *SwapRepositoryMock) GetCompletedSwaps(ctx context.Context, userID string) ([]domain.SwapRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.SwapRequest), args.Error(1)
}

func (m *SwapRepositoryMock) UpdateSwapStatus(ctx context.Context, tx *sqlx.Tx, id string, status domain.SwapStatus, updatedAt time.Time) error {
	args := m.Called(ctx, tx, id, status, updatedAt)
	return args.Error(0)
}

func (m *SwapRepositoryMock) DeleteSwap(ctx context.Context, tx *sqlx.Tx, id string) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type FeedbackRepositoryMock struct {
	mock.Mock
}

var _ repository.FeedbackRepository = (*FeedbackRepositoryMock)(nil)

func (m *FeedbackRepositoryMock) CreateFeedback(ctx context.Context, tx *sqlx.Tx, fb *domain.Feedback) error {
	args := m.Called(ctx, tx, fb)
	return args.Error(0)
}

func (m *FeedbackRepositoryMock) GetFeedbackBySwap(ctx context.Context, swapID string) ([]domain.Feedback, error) {
	args := m.Called(ctx, swapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *FeedbackRepositoryMock) GetFeedbackByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]domain.Feedback, error) {
	args := m.Called(ctx, userID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *FeedbackRepositoryMock) GetReceivedRatings(ctx context.Context, ext sqlx.ExtContext, userID string) ([]int, error) {
	args := m.Called(ctx, ext, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int), args.Error(1)
}

type CategoryCacheMock struct {
	mock.Mock
}

var _ cache.CategoryCache = (*CategoryCacheMock)(nil)

func (m *CategoryCacheMock) Get(ctx context.Context) ([]string, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *CategoryCacheMock) Set(ctx context.Context, categories []string) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *CategoryCacheMock) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
