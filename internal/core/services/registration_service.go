package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
	"github.com/vidstream/vidstream_backend/internal/utils"
)

// registrationFields mirrors the text fields of the registration request so
// they can be validated struct-wise, collecting every blank field instead of
// stopping at the first.
type registrationFields struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	FullName string `validate:"required"`
	Password string `validate:"required"`
}

type registrationService struct {
	userRepo     portsrepo.UserRepositoryFacade
	assetStorage portssvc.AssetStorageSvcFacade
	validate     *validator.Validate
}

// NewRegistrationService creates a new instance of registrationService.
func NewRegistrationService(userRepo portsrepo.UserRepositoryFacade, assetStorage portssvc.AssetStorageSvcFacade) portssvc.RegistrationSvcFacade {
	return &registrationService{
		userRepo:     userRepo,
		assetStorage: assetStorage,
		validate:     validator.New(),
	}
}

// Register orchestrates validation, uniqueness check, asset upload and user
// creation. Uploaded assets are not deleted when a later step fails, so a
// failed create can leave an orphaned asset behind in storage.
func (s *registrationService) Register(ctx context.Context, input portssvc.RegistrationInput) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fields := registrationFields{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		FullName: strings.TrimSpace(input.FullName),
		Password: strings.TrimSpace(input.Password),
	}
	if err := s.validate.Struct(fields); err != nil {
		var missing []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, verr := range verrs {
				missing = append(missing, verr.Field())
			}
		}
		return nil, fmt.Errorf("%w: missing or blank field(s): %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, strings.ToLower(fields.Username), fields.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with this username or email already exists", apperrors.ErrDuplicate)
	}

	if input.Avatar == nil {
		return nil, fmt.Errorf("%w: avatar file is required", apperrors.ErrValidation)
	}

	avatarURL, coverImageURL, err := s.uploadAssets(ctx, input.Avatar, input.CoverImage)
	if err != nil {
		return nil, err
	}
	if avatarURL == "" {
		return nil, fmt.Errorf("%w: avatar upload returned no URL", apperrors.ErrAssetUpload)
	}

	passwordHash, err := utils.HashPassword(fields.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      strings.ToLower(fields.Username),
		Email:         fields.Email,
		FullName:      fields.FullName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))

	// Strip credentials from the returned representation.
	user.PasswordHash = ""
	user.CurrentRefreshToken = ""
	return &user, nil
}

// uploadAssets pushes the avatar and, when present, the cover image to the
// asset storage concurrently. Uploads run outside any lock or transaction.
func (s *registrationService) uploadAssets(ctx context.Context, avatar, cover *portssvc.AssetReference) (string, string, error) {
	var avatarURL, coverImageURL string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.assetStorage.UploadAsset(gctx, *avatar)
		if err != nil {
			return fmt.Errorf("%w: avatar: %s", apperrors.ErrAssetUpload, err.Error())
		}
		avatarURL = url
		return nil
	})
	if cover != nil {
		g.Go(func() error {
			url, err := s.assetStorage.UploadAsset(gctx, *cover)
			if err != nil {
				return fmt.Errorf("%w: cover image: %s", apperrors.ErrAssetUpload, err.Error())
			}
			coverImageURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return avatarURL, coverImageURL, nil
}
