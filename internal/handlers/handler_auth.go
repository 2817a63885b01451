package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/dto"
	"github.com/vidstream/vidstream_backend/internal/middleware"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	registrationService portssvc.RegistrationSvcFacade
	sessionService      portssvc.SessionSvcFacade
	cfg                 *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(rs portssvc.RegistrationSvcFacade, ss portssvc.SessionSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		registrationService: rs,
		sessionService:      ss,
		cfg:                 cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication. Register, login
// and refresh are public; logout and change-password require a valid access
// token.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Registration, services.Session, cfg)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
	}

	authed := rg.Group("/api/v1/auth", middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName))
	{
		authed.POST("/logout", h.logout)
		authed.POST("/change-password", h.changePassword)
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates a new user account from multipart form fields plus a mandatory avatar file and optional cover image.
// @Tags auth
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Failure 502 {object} ErrorResponse "Asset upload failed"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	input := portssvc.RegistrationInput{RegisterRequest: req}

	avatar, avatarClose, err := formAsset(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	if avatarClose != nil {
		defer avatarClose()
	}
	input.Avatar = avatar

	cover, coverClose, err := formAsset(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}
	if coverClose != nil {
		defer coverClose()
	}
	input.CoverImage = cover

	user, err := h.registrationService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// formAsset opens the named multipart file if present. A missing file is not
// an error here; the registration service decides which assets are mandatory.
func formAsset(c *gin.Context, field string) (*portssvc.AssetReference, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not read %s file", apperrors.ErrValidation, field)
	}

	return &portssvc.AssetReference{
		FileName:    fileHeader.Filename,
		ContentType: contentTypeOf(fileHeader),
		Body:        file,
	}, func() { _ = file.Close() }, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

// login godoc
// @Summary User login
// @Description Authenticates by username or email plus password. Tokens are returned in the body and as HTTP-only cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.sessionService.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// refresh godoc
// @Summary Rotate session tokens
// @Description Exchanges a valid refresh token (cookie or body) for a fresh token pair. The presented token is consumed.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.cfg.RefreshTokenCookieName)
	if refreshToken == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	pair, err := h.sessionService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookies(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// logout godoc
// @Summary User logout
// @Description Clears the stored refresh token and expires the session cookies. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.sessionService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearSessionCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces the stored hash. Existing session tokens are left untouched.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.sessionService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *authHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, int(h.cfg.AccessTokenExpiryDuration.Seconds()), "/", "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", secure, true)
}

func (h *authHandler) clearSessionCookies(c *gin.Context) {
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, "/", "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", secure, true)
}
