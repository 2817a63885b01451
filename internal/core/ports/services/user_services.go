package services

import (
	"context"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	"github.com/vidstream/vidstream_backend/internal/dto"
)

// RegistrationInput carries the registration fields plus the asset references
// to hand to the asset storage. Avatar is mandatory, cover image optional.
type RegistrationInput struct {
	dto.RegisterRequest
	Avatar     *AssetReference
	CoverImage *AssetReference
}

// RegistrationSvcFacade orchestrates validation, uniqueness check, asset
// upload and user creation.
type RegistrationSvcFacade interface {
	// Register creates a new user. Returns apperrors.ErrValidation naming
	// every blank required field at once, apperrors.ErrDuplicate when the
	// username or email is taken, and apperrors.ErrAssetUpload when the
	// avatar upload fails. The returned user is sanitized.
	Register(ctx context.Context, input RegistrationInput) (*domain.User, error)
}

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
