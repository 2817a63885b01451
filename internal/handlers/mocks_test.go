package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, username, email, password string) (*portssvc.SessionResult, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SessionResult), args.Error(1)
}

func (m *MockSessionService) Refresh(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.TokenPair), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock RegistrationService ---
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, input portssvc.RegistrationInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.RegistrationSvcFacade = (*MockRegistrationService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, subscriberID, channelUsername string) error {
	args := m.Called(ctx, subscriberID, channelUsername)
	return args.Error(0)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelUsername string) error {
	args := m.Called(ctx, subscriberID, channelUsername)
	return args.Error(0)
}

var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserService)(nil)
