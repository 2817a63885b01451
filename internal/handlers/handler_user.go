package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/dto"
	"github.com/vidstream/vidstream_backend/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserReaderSvc
}

func newUserHandler(us portssvc.UserReaderSvc) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)
	}
}

// getCurrentUser godoc
// @Summary Current user
// @Description Returns the sanitized profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
