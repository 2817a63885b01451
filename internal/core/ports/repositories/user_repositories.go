package repositories

import (
	"context"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either the given
	// username (compared against the stored lowercase form) or the given
	// email. Returns apperrors.ErrNotFound when neither matches.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email uniqueness constraint is violated.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}

// RefreshTokenWriter defines the operations mutating the single refresh token
// slot on a user row.
type RefreshTokenWriter interface {
	// UpdateRefreshToken unconditionally overwrites the stored refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken nulls out the stored refresh token. Idempotent.
	ClearRefreshToken(ctx context.Context, userID string) error

	// CompareAndSwapRefreshToken atomically replaces the stored token with
	// next only if the current value equals expected. Returns false (and
	// performs no write) on mismatch. This is the concurrency anchor for
	// refresh token rotation.
	CompareAndSwapRefreshToken(ctx context.Context, userID string, expected, next string) (bool, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	RefreshTokenWriter
}
