package dto

// RegisterRequest defines the data needed to register a new account.
// Asset references arrive separately (multipart file parts); only the text
// fields are bound here. Blank-after-trim checks happen in the service so all
// problems are reported at once.
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"fullName" form:"fullName"`
	Password string `json:"password" form:"password"`
}

// LoginRequest defines the credentials accepted for login. Either username or
// email may identify the account; both may be supplied.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshRequest carries the refresh token when it is not supplied as a
// cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse represents the response for a successful token rotation.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest defines the data needed to change the password of the
// authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
