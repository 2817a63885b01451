package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/core/services"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockSubRepo  *MockSubscriptionRepository
	service      portssvc.ProfileSvcFacade
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.service = services.NewProfileService(suite.mockUserRepo, suite.mockSubRepo)
}

func (suite *ProfileServiceTestSuite) channelUser() *domain.User {
	return &domain.User{
		UserID:        uuid.NewString(),
		Username:      "channelowner",
		Email:         "owner@example.com",
		FullName:      "Channel Owner",
		AvatarURL:     "https://assets.example.com/a.png",
		CoverImageURL: "https://assets.example.com/c.png",
	}
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_SubscribedViewer() {
	ctx := context.Background()
	channel := suite.channelUser()
	viewerID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "channelowner", "").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(42), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(7), nil).Once()
	suite.mockSubRepo.On("IsSubscribed", ctx, viewerID, channel.UserID).Return(true, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, viewerID, "channelowner")

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal(channel.UserID, profile.UserID)
	suite.Equal("channelowner", profile.Username)
	suite.Equal(int64(42), profile.SubscriberCount)
	suite.Equal(int64(7), profile.SubscribedToCount)
	suite.True(profile.IsSubscribed)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_UnsubscribedViewer() {
	ctx := context.Background()
	channel := suite.channelUser()
	viewerID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "channelowner", "").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(0), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(0), nil).Once()
	suite.mockSubRepo.On("IsSubscribed", ctx, viewerID, channel.UserID).Return(false, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, viewerID, "channelowner")

	suite.Require().NoError(err)
	suite.False(profile.IsSubscribed)
	suite.Equal(int64(0), profile.SubscriberCount)
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_AnonymousViewer() {
	ctx := context.Background()
	channel := suite.channelUser()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "channelowner", "").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(3), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(1), nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "", "channelowner")

	suite.Require().NoError(err)
	suite.False(profile.IsSubscribed)
	// Anonymous viewers never trigger a membership check.
	suite.mockSubRepo.AssertNotCalled(suite.T(), "IsSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_CaseInsensitiveLookup() {
	ctx := context.Background()
	channel := suite.channelUser()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "channelowner", "").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(0), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(0), nil).Once()

	_, err := suite.service.GetChannelProfile(ctx, "", "ChannelOwner")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_UnknownChannel() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "ghost", "").Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "", "ghost")

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_BlankUsername() {
	ctx := context.Background()

	profile, err := suite.service.GetChannelProfile(ctx, "", "   ")

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
