package services

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
	"github.com/vidstream/vidstream_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing and verifying the
// access and refresh JWTs. The two kinds use distinct secrets and TTLs from
// configuration, so a leaked access-token secret cannot forge refresh tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// IssueAccessToken creates a new short-lived JWT access token for the user.
func (s *tokenService) IssueAccessToken(ctx context.Context, userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
}

// IssueRefreshToken creates a new longer-lived JWT refresh token for the user.
// The returned literal is mirrored into the user's refresh token slot by the
// session service; verification alone does not make it valid.
func (s *tokenService) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
}

// VerifyToken checks signature and expiry for the given kind and returns the
// subject user ID.
func (s *tokenService) VerifyToken(ctx context.Context, token string, kind portssvc.TokenKind) (string, error) {
	secret := s.cfg.AccessTokenSecret
	if kind == portssvc.TokenKindRefresh {
		secret = s.cfg.RefreshTokenSecret
	}

	claims, err := utils.ParseAndValidateJWT(token, secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}
