package dto

import (
	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// UserResponse defines the externally visible representation of a user.
// PasswordHash and CurrentRefreshToken are intentionally absent.
type UserResponse struct {
	UserID        string `json:"userID"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
}

// ToUserResponse converts a domain.User to the sanitized UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
	}
}
