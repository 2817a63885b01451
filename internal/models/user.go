package models

import (
	"database/sql"
	"time"
)

// User is the persistence row model for the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"` // stored lowercase, unique
	Email        string `db:"email"`    // unique
	FullName     string `db:"full_name"`
	PasswordHash string `db:"password_hash"`
	AvatarURL    string `db:"avatar_url"`

	CoverImageURL sql.NullString `db:"cover_image_url"`

	// CurrentRefreshToken mirrors the literal value of the most recently
	// issued refresh token; NULL when logged out.
	CurrentRefreshToken sql.NullString `db:"current_refresh_token"`

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
