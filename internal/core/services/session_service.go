package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	portsrepo "github.com/vidstream/vidstream_backend/internal/core/ports/repositories"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
	"github.com/vidstream/vidstream_backend/internal/utils"
)

// sessionService implements the SessionSvcFacade. All session truth lives in
// the user's refresh token slot in the store; the service keeps no in-process
// state, so instances are safe to share across concurrent requests.
//
// The store holds a single slot per user, so logging in from a second client
// force-logs-out the first.
type sessionService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.SessionSvcFacade {
	return &sessionService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Login authenticates by username and/or email plus password, issues both
// tokens and unconditionally overwrites the stored refresh token.
func (s *sessionService) Login(ctx context.Context, username, email, password string) (*portssvc.SessionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.TrimSpace(email)
	if username == "" && email == "" {
		return nil, fmt.Errorf("%w: username or email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password so callers can't probe for
			// account existence.
			return nil, apperrors.ErrAuthenticationFailed
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrAuthenticationFailed
	}

	accessToken, err := s.tokenSvc.IssueAccessToken(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to issue access token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.IssueRefreshToken(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to issue refresh token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken); err != nil {
		logger.Error("Failed to persist refresh token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))

	user.PasswordHash = ""
	user.CurrentRefreshToken = ""
	return &portssvc.SessionResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates the refresh token. The compare-and-swap against the stored
// slot makes rotation race-free: of two concurrent calls presenting the same
// valid token, exactly one wins; the loser gets ErrTokenInvalid and no
// rotation happens for it.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if refreshToken == "" {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := s.tokenSvc.VerifyToken(ctx, refreshToken, portssvc.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load user for refresh", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	newRefreshToken, err := s.tokenSvc.IssueRefreshToken(ctx, userID)
	if err != nil {
		logger.Error("Failed to issue refresh token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	swapped, err := s.userRepo.CompareAndSwapRefreshToken(ctx, userID, refreshToken, newRefreshToken)
	if err != nil {
		logger.Error("Failed to rotate refresh token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !swapped {
		// The stored slot no longer holds this token: it was already rotated
		// or revoked. Reuse of a consumed token is rejected outright.
		logger.Warn("Refresh token reuse detected", slog.String("user_id", userID))
		return nil, apperrors.ErrTokenInvalid
	}

	accessToken, err := s.tokenSvc.IssueAccessToken(ctx, userID)
	if err != nil {
		logger.Error("Failed to issue access token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout clears the stored refresh token. Logging out twice is not an error.
func (s *sessionService) Logout(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		logger.Error("Failed to clear refresh token", slog.String("error", err.Error()))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	logger.Info("User logged out", slog.String("user_id", userID))
	return nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
// Session tokens are left untouched.
func (s *sessionService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password must not be blank", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load user for password change", slog.String("error", err.Error()))
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.ErrAuthenticationFailed
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		logger.Error("Failed to store new password hash", slog.String("error", err.Error()))
		return fmt.Errorf("failed to store new password hash: %w", err)
	}

	logger.Info("Password changed", slog.String("user_id", userID))
	return nil
}
