package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
)

// --- Mock UserRepository (based on service usage) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn               func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameOrEmailFn  func(ctx context.Context, username, email string) (*domain.User, error)
	SaveUserFn                   func(ctx context.Context, user domain.User) error
	UpdatePasswordHashFn         func(ctx context.Context, userID string, passwordHash string) error
	UpdateRefreshTokenFn         func(ctx context.Context, userID string, refreshToken string) error
	ClearRefreshTokenFn          func(ctx context.Context, userID string) error
	CompareAndSwapRefreshTokenFn func(ctx context.Context, userID string, expected, next string) (bool, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	if m.FindUserByUsernameOrEmailFn != nil {
		return m.FindUserByUsernameOrEmailFn(ctx, username, email)
	}
	args := m.Called(ctx, username, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordHashFn != nil {
		return m.UpdatePasswordHashFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshToken)
	}
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CompareAndSwapRefreshToken(ctx context.Context, userID string, expected, next string) (bool, error) {
	if m.CompareAndSwapRefreshTokenFn != nil {
		return m.CompareAndSwapRefreshTokenFn(ctx, userID, expected, next)
	}
	args := m.Called(ctx, userID, expected, next)
	return args.Bool(0), args.Error(1)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
	CountSubscribersFn   func(ctx context.Context, channelID string) (int64, error)
	CountSubscribedToFn  func(ctx context.Context, subscriberID string) (int64, error)
	IsSubscribedFn       func(ctx context.Context, subscriberID, channelID string) (bool, error)
	SaveSubscriptionFn   func(ctx context.Context, sub domain.Subscription) error
	DeleteSubscriptionFn func(ctx context.Context, subscriberID, channelID string) error
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	if m.CountSubscribersFn != nil {
		return m.CountSubscribersFn(ctx, channelID)
	}
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	if m.CountSubscribedToFn != nil {
		return m.CountSubscribedToFn(ctx, subscriberID)
	}
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if m.IsSubscribedFn != nil {
		return m.IsSubscribedFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	if m.SaveSubscriptionFn != nil {
		return m.SaveSubscriptionFn(ctx, sub)
	}
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	if m.DeleteSubscriptionFn != nil {
		return m.DeleteSubscriptionFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
	IssueAccessTokenFn  func(ctx context.Context, userID string) (string, error)
	IssueRefreshTokenFn func(ctx context.Context, userID string) (string, error)
	VerifyTokenFn       func(ctx context.Context, token string, kind portssvc.TokenKind) (string, error)
}

func (m *MockTokenService) IssueAccessToken(ctx context.Context, userID string) (string, error) {
	if m.IssueAccessTokenFn != nil {
		return m.IssueAccessTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	if m.IssueRefreshTokenFn != nil {
		return m.IssueRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyToken(ctx context.Context, token string, kind portssvc.TokenKind) (string, error) {
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, token, kind)
	}
	args := m.Called(ctx, token, kind)
	return args.String(0), args.Error(1)
}

// --- Mock AssetStorage ---
type MockAssetStorage struct {
	mock.Mock
	UploadAssetFn func(ctx context.Context, asset portssvc.AssetReference) (string, error)
}

func (m *MockAssetStorage) UploadAsset(ctx context.Context, asset portssvc.AssetReference) (string, error) {
	if m.UploadAssetFn != nil {
		return m.UploadAssetFn(ctx, asset)
	}
	args := m.Called(ctx, asset)
	return args.String(0), args.Error(1)
}
