package dto

import (
	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// ChannelProfileResponse defines the data returned for a channel profile
// lookup, including viewer-relative subscription statistics.
type ChannelProfileResponse struct {
	UserID            string `json:"userID"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatarURL"`
	CoverImageURL     string `json:"coverImageURL,omitempty"`
	SubscriberCount   int64  `json:"subscriberCount"`
	SubscribedToCount int64  `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// ToChannelProfileResponse converts a domain.ChannelProfile to its DTO.
func ToChannelProfileResponse(p *domain.ChannelProfile) ChannelProfileResponse {
	return ChannelProfileResponse{
		UserID:            p.UserID,
		Username:          p.Username,
		FullName:          p.FullName,
		Email:             p.Email,
		AvatarURL:         p.AvatarURL,
		CoverImageURL:     p.CoverImageURL,
		SubscriberCount:   p.SubscriberCount,
		SubscribedToCount: p.SubscribedToCount,
		IsSubscribed:      p.IsSubscribed,
	}
}
