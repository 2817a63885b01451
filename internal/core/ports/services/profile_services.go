package services

import (
	"context"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// ProfileSvcFacade computes the subscription-aware channel profile read model.
type ProfileSvcFacade interface {
	// GetChannelProfile resolves username case-insensitively and returns the
	// public profile projection with subscriber/subscription counts and the
	// viewer-relative IsSubscribed flag. viewerID may be empty for anonymous
	// viewers, in which case IsSubscribed is false, never an error. Fails
	// with apperrors.ErrNotFound when no user matches.
	GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error)
}

// SubscriptionSvcFacade manages subscription edges between users.
type SubscriptionSvcFacade interface {
	// Subscribe records subscriberID following the channel with the given
	// username. Subscribing to yourself fails with apperrors.ErrValidation;
	// repeating an existing subscription is a no-op.
	Subscribe(ctx context.Context, subscriberID, channelUsername string) error

	// Unsubscribe removes the edge. Removing a missing edge is not an error.
	Unsubscribe(ctx context.Context, subscriberID, channelUsername string) error
}
