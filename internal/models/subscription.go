package models

import "time"

// Subscription is the persistence row model for the subscriptions table.
// (subscriber_id, channel_id) carries a unique constraint.
type Subscription struct {
	SubscriptionID string    `db:"subscription_id"`
	SubscriberID   string    `db:"subscriber_id"`
	ChannelID      string    `db:"channel_id"`
	CreatedAt      time.Time `db:"created_at"`
}
