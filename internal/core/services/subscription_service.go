package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
)

type subscriptionService struct {
	userRepo portsrepo.UserReader
	subRepo  portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(userRepo portsrepo.UserReader, subRepo portsrepo.SubscriptionRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

// Subscribe records subscriberID following the named channel. Repeating an
// existing subscription is a no-op.
func (s *subscriptionService) Subscribe(ctx context.Context, subscriberID, channelUsername string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	channel, err := s.resolveChannel(ctx, channelUsername)
	if err != nil {
		return err
	}
	if channel.UserID == subscriberID {
		return fmt.Errorf("%w: cannot subscribe to your own channel", apperrors.ErrValidation)
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   subscriberID,
		ChannelID:      channel.UserID,
		CreatedAt:      time.Now(),
	}
	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		logger.Error("Failed to save subscription", slog.String("error", err.Error()), slog.String("channel_id", channel.UserID))
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	logger.Info("Subscribed", slog.String("channel_id", channel.UserID))
	return nil
}

// Unsubscribe removes the edge; removing a missing edge is not an error.
func (s *subscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelUsername string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	channel, err := s.resolveChannel(ctx, channelUsername)
	if err != nil {
		return err
	}

	if err := s.subRepo.DeleteSubscription(ctx, subscriberID, channel.UserID); err != nil {
		logger.Error("Failed to delete subscription", slog.String("error", err.Error()), slog.String("channel_id", channel.UserID))
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (s *subscriptionService) resolveChannel(ctx context.Context, channelUsername string) (*domain.User, error) {
	channelUsername = strings.ToLower(strings.TrimSpace(channelUsername))
	if channelUsername == "" {
		return nil, fmt.Errorf("%w: channel username is required", apperrors.ErrValidation)
	}

	channel, err := s.userRepo.FindUserByUsernameOrEmail(ctx, channelUsername, "")
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve channel: %w", err)
	}
	return channel, nil
}
