package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{db: db}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

// SaveSubscription inserts the edge. ON CONFLICT DO NOTHING keeps repeated
// subscribes idempotent under the (subscriber_id, channel_id) unique index.
func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
        INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (subscriber_id, channel_id) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, sub.SubscriptionID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	query := `
        DELETE FROM subscriptions
        WHERE subscriber_id = $1 AND channel_id = $2;
    `
	if _, err := r.db.Exec(ctx, query, subscriberID, channelID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1;`

	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1;`

	var count int64
	if err := r.db.QueryRow(ctx, query, subscriberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return exists, nil
}
