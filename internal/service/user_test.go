package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/YusovID/skillswap/internal/apperrors"
	"github.com/YusovID/skillswap/internal/auth"
	"github.com/YusovID/skillswap/internal/config"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T, userRepo *UserRepositoryMock, categories *CategoryCacheMock) (*UserServiceImpl, *auth.PasswordHasher, *auth.TokenManager) {
	t.Helper()

	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	tokens := auth.NewTokenManager(config.Auth{JWTSecret: "test-secret", Issuer: "skillswap-test", TokenTTL: time.Hour})

	return NewUserService(newTestLogger(), userRepo, hasher, tokens, categories), hasher, tokens
}

func TestUserServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		input       RegisterInput
		setupMocks  func(userRepo *UserRepositoryMock)
		expectedErr error
	}{
		{
			name:  "Success: email is normalized and defaults applied",
			input: RegisterInput{FirstName: " Ana ", LastName: "Lopez", Email: "  Ana@Example.COM ", Password: "s3cret"},
			setupMocks: func(userRepo *UserRepositoryMock) {
				userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Email == "ana@example.com" && u.FirstName == "Ana" && u.IsPublic &&
						u.Availability == domain.DefaultAvailability() &&
						u.PasswordHash != "" && u.PasswordHash != "s3cret"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.User).ID = "user-ana"
				}).Return(nil).Once()
			},
		},
		{
			name:  "Failure: email already registered",
			input: RegisterInput{FirstName: "Ana", Email: "ana@example.com", Password: "s3cret"},
			setupMocks: func(userRepo *UserRepositoryMock) {
				userRepo.On("CreateUser", mock.Anything, mock.Anything).
					Return(&apperrors.EmailTakenError{Email: "ana@example.com"}).Once()
			},
			expectedErr: apperrors.ErrEmailTaken,
		},
		{
			name:        "Failure: missing password",
			input:       RegisterInput{FirstName: "Ana", Email: "ana@example.com"},
			setupMocks:  func(*UserRepositoryMock) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:        "Failure: blank first name",
			input:       RegisterInput{FirstName: "   ", Email: "ana@example.com", Password: "s3cret"},
			setupMocks:  func(*UserRepositoryMock) {},
			expectedErr: apperrors.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(UserRepositoryMock)
			tc.setupMocks(userRepo)

			service, _, _ := newTestUserService(t, userRepo, new(CategoryCacheMock))

			user, err := service.Register(ctx, tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-ana", user.ID)
				assert.Equal(t, "ana@example.com", user.Email)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestUserServiceImpl_Login(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepositoryMock)
	service, hasher, tokens := newTestUserService(t, userRepo, new(CategoryCacheMock))

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	stored := &domain.User{ID: "user-ana", FirstName: "Ana", Email: "ana@example.com", PasswordHash: hash, IsPublic: true}

	userRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
	userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetUserByEmail", mock.Anything, "broken@example.com").Return(nil, errors.New("connection refused"))

	t.Run("Success: token identifies the user", func(t *testing.T) {
		resp, err := service.Login(ctx, " ANA@example.com", "correct horse")
		require.NoError(t, err)

		assert.Equal(t, "user-ana", resp.User.ID)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		claims, err := tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-ana", claims.UserID)
	})

	t.Run("Failure: wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failure: unknown email looks the same as a wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failure: repository error is not masked", func(t *testing.T) {
		_, err := service.Login(ctx, "broken@example.com", "whatever")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUserServiceImpl_GetProfile(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepositoryMock)
	userRepo.On("GetUserByID", mock.Anything, "user-private").
		Return(&domain.User{ID: "user-private", Email: "p@example.com", IsPublic: false}, nil)
	userRepo.On("GetUserByID", mock.Anything, "user-public").
		Return(&domain.User{ID: "user-public", Email: "pub@example.com", IsPublic: true}, nil)

	service, _, _ := newTestUserService(t, userRepo, new(CategoryCacheMock))

	_, err := service.GetProfile(ctx, "", "user-private")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = service.GetProfile(ctx, "someone-else", "user-private")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	own, err := service.GetProfile(ctx, "user-private", "user-private")
	require.NoError(t, err)
	assert.Equal(t, "p@example.com", own.Email)

	public, err := service.GetProfile(ctx, "", "user-public")
	require.NoError(t, err)
	assert.Empty(t, public.Email)
}

func TestUserServiceImpl_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: only provided fields are sent", func(t *testing.T) {
		userRepo := new(UserRepositoryMock)
		userRepo.On("UpdateUser", mock.Anything, "user-ana", mock.MatchedBy(func(u domain.UserUpdate) bool {
			return u.Location != nil && *u.Location == "Madrid" && u.Bio == nil && u.FirstName == nil
		})).Return(&domain.User{ID: "user-ana", Location: strPtr("Madrid")}, nil).Once()

		service, _, _ := newTestUserService(t, userRepo, new(CategoryCacheMock))

		user, err := service.UpdateProfile(ctx, "user-ana", UpdateProfileInput{Location: strPtr(" Madrid ")})
		require.NoError(t, err)
		assert.Equal(t, "Madrid", *user.Location)

		userRepo.AssertExpectations(t)
	})

	t.Run("Success: empty update returns current profile", func(t *testing.T) {
		userRepo := new(UserRepositoryMock)
		userRepo.On("GetUserByID", mock.Anything, "user-ana").Return(&domain.User{ID: "user-ana"}, nil).Once()

		service, _, _ := newTestUserService(t, userRepo, new(CategoryCacheMock))

		user, err := service.UpdateProfile(ctx, "user-ana", UpdateProfileInput{})
		require.NoError(t, err)
		assert.Equal(t, "user-ana", user.ID)

		userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure: blank first name", func(t *testing.T) {
		service, _, _ := newTestUserService(t, new(UserRepositoryMock), new(CategoryCacheMock))

		_, err := service.UpdateProfile(ctx, "user-ana", UpdateProfileInput{FirstName: strPtr("  ")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failure: anonymous", func(t *testing.T) {
		service, _, _ := newTestUserService(t, new(UserRepositoryMock), new(CategoryCacheMock))

		_, err := service.UpdateProfile(ctx, "", UpdateProfileInput{Bio: strPtr("hi")})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestUserServiceImpl_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepositoryMock)
	categories := new(CategoryCacheMock)

	userRepo.On("DeleteUser", mock.Anything, "user-ana").Return(nil).Once()
	categories.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()

	service, _, _ := newTestUserService(t, userRepo, categories)

	assert.NoError(t, service.DeleteAccount(ctx, "user-ana"))

	userRepo.On("DeleteUser", mock.Anything, "user-gone").Return(apperrors.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteAccount(ctx, "user-gone"), apperrors.ErrNotFound)

	userRepo.AssertExpectations(t)
	categories.AssertExpectations(t)
}
