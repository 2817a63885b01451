package domain

// ChannelProfile is the read-model projection of a user in their role as a
// channel, enriched with subscription statistics relative to the viewer.
// It carries public profile fields only.
type ChannelProfile struct {
	UserID            string `json:"userID"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatarURL"`
	CoverImageURL     string `json:"coverImageURL,omitempty"`
	SubscriberCount   int64  `json:"subscriberCount"`
	SubscribedToCount int64  `json:"subscribedToCount"`
	// IsSubscribed reports whether the requesting viewer follows this
	// channel. Always false for anonymous viewers.
	IsSubscribed bool `json:"isSubscribed"`
}
