package http

import (
	"context"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/internal/service"
	"github.com/YusovID/skillswap/pkg/api"
	"github.com/stretchr/testify/mock"
)

type UserServiceMock struct {
	mock.Mock
}

var _ service.UserService = (*UserServiceMock)(nil)

func (m *UserServiceMock) Register(ctx context.Context, in service.RegisterInput) (*api.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.AuthResponse), args.Error(1)
}

func (m *UserServiceMock) GetProfile(ctx context.Context, actorID, userID string) (*api.User, error) {
	args := m.Called(ctx, actorID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) UpdateProfile(ctx context.Context, actorID string, in service.UpdateProfileInput) (*api.User, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) DeleteAccount(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

type SkillServiceMock struct {
	mock.Mock
}

var _ service.SkillService = (*SkillServiceMock)(nil)

func (m *SkillServiceMock) CreateSkill(ctx context.Context, actorID string, in service.CreateSkillInput) (*api.Skill, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Skill), args.Error(1)
}

func (m *SkillServiceMock) GetSkill(ctx context.Context, actorID, id string) (*api.Skill, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Skill), args.Error(1)
}

func (m *SkillServiceMock) ListUserSkills(ctx context.Context, actorID, ownerID string) ([]api.Skill, error) {
	args := m.Called(ctx, actorID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Skill), args.Error(1)
}

func (m *SkillServiceMock) UpdateSkill(ctx context.Context, actorID, id string, in service.UpdateSkillInput) (*api.Skill, error) {
	args := m.Called(ctx, actorID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Skill), args.Error(1)
}

func (m *SkillServiceMock) SetVisibility(ctx context.Context, actorID, id string, public bool) (*api.Skill, error) {
	args := m.Called(ctx, actorID, id, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Skill), args.Error(1)
}

func (m *SkillServiceMock) SetAvailability(ctx context.Context, actorID, id string, available bool) (*api.Skill, error) {
	args := m.Called(ctx, actorID, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Skill), args.Error(1)
}

func (m *SkillServiceMock) DeleteSkill(ctx context.Context, actorID, id string) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *SkillServiceMock) Search(ctx context.Context, filter domain.SkillFilter) ([]api.SkillListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.SkillListing), args.Error(1)
}

func (m *SkillServiceMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

type SwapServiceMock struct {
	mock.Mock
}

var _ service.SwapService = (*SwapServiceMock)(nil)

func (m *SwapServiceMock) Create(ctx context.Context, actorID string, in service.CreateSwapInput) (*api.SwapRequest, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.SwapRequest), args.Error(1)
}

func (m *SwapServiceMock) Get(ctx context.Context, actorID, id string) (*api.SwapRequest, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.SwapRequest), args.Error(1)
}

func (m *SwapServiceMock) Respond(ctx context.Context, actorID, id string, decision domain.SwapStatus) (*api.SwapRequest, error) {
	args := m.Called(ctx, actorID, id, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.SwapRequest), args.Error(1)
}

func (m *SwapServiceMock) Complete(ctx context.Context, actorID, id string) (*api.SwapRequest, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.SwapRequest), args.Error(1)
}

func (m *SwapServiceMock) Delete(ctx context.Context, actorID, id string) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *SwapServiceMock) ListByUser(ctx context.Context, userID string, direction domain.SwapDirection) ([]api.SwapRequest, error) {
	args := m.Called(ctx, userID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.SwapRequest), args.Error(1)
}

func (m *SwapServiceMock) ListCompleted(ctx context.Context, userID string) ([]api.SwapRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.SwapRequest), args.Error(1)
}

type FeedbackServiceMock struct {
	mock.Mock
}

var _ service.FeedbackService = (*FeedbackServiceMock)(nil)

func (m *FeedbackServiceMock) Submit(ctx context.Context, in service.SubmitFeedbackInput) (*api.Feedback, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Feedback), args.Error(1)
}

func (m *FeedbackServiceMock) RecomputeRating(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *FeedbackServiceMock) ListBySwap(ctx context.Context, swapID string) ([]api.Feedback, error) {
	args := m.Called(ctx, swapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Feedback), args.Error(1)
}

func (m *FeedbackServiceMock) ListByUser(ctx context.Context, userID string, direction domain.FeedbackDirection) ([]api.Feedback, error) {
	args := m.Called(ctx, userID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Feedback), args.Error(1)
}
