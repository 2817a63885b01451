package repositories

import (
	"context"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// SubscriptionReader defines read operations over the subscription relation.
type SubscriptionReader interface {
	// CountSubscribers counts edges where the given user is the channel.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)

	// CountSubscribedTo counts edges where the given user is the subscriber.
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)

	// IsSubscribed reports whether an edge subscriber->channel exists.
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
}

// SubscriptionWriter defines write operations over the subscription relation.
type SubscriptionWriter interface {
	// SaveSubscription persists an edge. Saving an edge that already exists
	// is a no-op; the (subscriber, channel) pair is unique.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes the subscriber->channel edge. Deleting a
	// missing edge is not an error.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) error
}

// SubscriptionRepositoryFacade combines all subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
