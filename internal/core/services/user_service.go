package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
)

type userService struct {
	userRepo portsrepo.UserReader
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserReader) portssvc.UserReaderSvc {
	return &userService{userRepo: userRepo}
}

// GetUserByID retrieves a user by ID with credentials stripped.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user by ID", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	user.PasswordHash = ""
	user.CurrentRefreshToken = ""
	return user, nil
}
