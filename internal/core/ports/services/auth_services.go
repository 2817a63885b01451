package services

import (
	"context"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
)

// TokenKind distinguishes the two bearer artifacts the issuer signs. Each
// kind uses its own secret and TTL, so a leaked access-token secret cannot
// forge refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenSvcFacade signs and verifies session tokens. Verification checks
// signature and expiry only; matching the literal refresh token against the
// stored slot is the session service's responsibility.
type TokenSvcFacade interface {
	// IssueAccessToken creates a short-lived signed token carrying userID.
	IssueAccessToken(ctx context.Context, userID string) (string, error)

	// IssueRefreshToken creates a longer-lived signed token carrying userID.
	IssueRefreshToken(ctx context.Context, userID string) (string, error)

	// VerifyToken validates signature and expiry for the given kind and
	// returns the subject user ID. Fails with apperrors.ErrTokenExpired or
	// apperrors.ErrTokenInvalid.
	VerifyToken(ctx context.Context, token string, kind TokenKind) (string, error)
}

// SessionResult bundles the artifacts of a successful login.
type SessionResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// TokenPair bundles the artifacts of a successful rotation.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionSvcFacade owns the login / refresh / logout / change-password state
// transitions. All session truth lives in the store; the service keeps no
// in-process state.
type SessionSvcFacade interface {
	// Login authenticates by username and/or email plus password. Unknown
	// identifier and wrong password fail identically with
	// apperrors.ErrAuthenticationFailed. On success the issued refresh token
	// overwrites the stored slot unconditionally, logging out any other
	// session for this user.
	Login(ctx context.Context, username, email, password string) (*SessionResult, error)

	// Refresh rotates the refresh token. Presenting a token that no longer
	// matches the stored slot fails with apperrors.ErrTokenInvalid and
	// performs no rotation; of two concurrent calls with the same valid
	// token exactly one succeeds.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID string) error

	// ChangePassword verifies oldPassword and stores a hash of newPassword.
	// Does not rotate or clear session tokens.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
