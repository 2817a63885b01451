package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	"github.com/vidstream/vidstream_backend/internal/middleware"
)

// ErrorResponse is the generic error response structure for all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError is the single error-to-response mapping every handler funnels
// through. Known business errors propagate their own message; anything else
// is logged and surfaced as a bare 500 so internal detail never leaks.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrAuthenticationFailed.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUnauthorized.Error()})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenExpired.Error()})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenInvalid.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.ErrNotFound.Error()})
	case errors.Is(err, apperrors.ErrAssetUpload):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: apperrors.ErrAssetUpload.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: apperrors.ErrInternal.Error()})
	}
}
