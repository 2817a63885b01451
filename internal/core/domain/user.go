package domain

// User represents an account holder of the platform in the domain.
// PasswordHash and CurrentRefreshToken never appear in any externally
// returned representation; dto.ToUserResponse strips them.
type User struct {
	UserID        string `json:"userID"` // Primary Key (UUID)
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	PasswordHash  string `json:"-"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
	// CurrentRefreshToken holds at most the most recently issued unconsumed
	// refresh token. Empty means no active session.
	CurrentRefreshToken string `json:"-"`
	AuditFields
}
