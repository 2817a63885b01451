package domain

import "time"

// Subscription is a directed relation edge recording that SubscriberID
// follows ChannelID. The pair is unique; repeated subscribes are no-ops.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	SubscriberID   string    `json:"subscriberID"`
	ChannelID      string    `json:"channelID"`
	CreatedAt      time.Time `json:"createdAt"`
}
