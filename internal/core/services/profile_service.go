package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
)

// profileService implements the ProfileSvcFacade read model. Stats are
// computed as two explicit relation counts plus one membership check against
// the subscription relation.
type profileService struct {
	userRepo portsrepo.UserReader
	subRepo  portsrepo.SubscriptionReader
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo portsrepo.UserReader, subRepo portsrepo.SubscriptionReader) portssvc.ProfileSvcFacade {
	return &profileService{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

// GetChannelProfile returns the public channel projection with subscription
// stats relative to the viewer. viewerID may be empty for anonymous viewers.
func (s *profileService) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, "")
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find channel user", slog.String("error", err.Error()), slog.String("username", username))
		}
		return nil, err
	}

	subscriberCount, err := s.subRepo.CountSubscribers(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to count subscribers", slog.String("error", err.Error()), slog.String("channel_id", user.UserID))
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}

	subscribedToCount, err := s.subRepo.CountSubscribedTo(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to count subscriptions", slog.String("error", err.Error()), slog.String("channel_id", user.UserID))
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = s.subRepo.IsSubscribed(ctx, viewerID, user.UserID)
		if err != nil {
			logger.Error("Failed to check subscription", slog.String("error", err.Error()), slog.String("channel_id", user.UserID))
			return nil, fmt.Errorf("failed to check subscription: %w", err)
		}
	}

	return &domain.ChannelProfile{
		UserID:            user.UserID,
		Username:          user.Username,
		FullName:          user.FullName,
		Email:             user.Email,
		AvatarURL:         user.AvatarURL,
		CoverImageURL:     user.CoverImageURL,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}
