package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidstream/vidstream_backend/internal/apperrors"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/dto"
	"github.com/vidstream/vidstream_backend/internal/middleware"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
)

// channelHandler serves the channel profile read model and subscription
// management.
type channelHandler struct {
	profileService      portssvc.ProfileSvcFacade
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newChannelHandler(ps portssvc.ProfileSvcFacade, ss portssvc.SubscriptionSvcFacade) *channelHandler {
	return &channelHandler{
		profileService:      ps,
		subscriptionService: ss,
	}
}

// registerChannelRoutes registers channel profile and subscription routes.
// The profile endpoint allows anonymous viewers; subscription management
// requires authentication.
func registerChannelRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newChannelHandler(services.Profile, services.Subscription)

	channels := rg.Group("/api/v1/channels")
	channels.GET("/:username", middleware.OptionalAuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName), h.getChannelProfile)

	authed := rg.Group("/api/v1/channels", middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName))
	{
		authed.POST("/:username/subscription", h.subscribe)
		authed.DELETE("/:username/subscription", h.unsubscribe)
	}
}

// getChannelProfile godoc
// @Summary Channel profile
// @Description Returns public channel fields plus subscriber/subscription counts and whether the viewer is subscribed.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username (case-insensitive)"
// @Success 200 {object} dto.ChannelProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /channels/{username} [get]
func (h *channelHandler) getChannelProfile(c *gin.Context) {
	username := c.Param("username")

	viewerID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.profileService.GetChannelProfile(c.Request.Context(), viewerID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelProfileResponse(profile))
}

// subscribe godoc
// @Summary Subscribe to a channel
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /channels/{username}/subscription [post]
func (h *channelHandler) subscribe(c *gin.Context) {
	subscriberID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), subscriberID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}

// unsubscribe godoc
// @Summary Unsubscribe from a channel
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /channels/{username}/subscription [delete]
func (h *channelHandler) unsubscribe(c *gin.Context) {
	subscriberID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), subscriberID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
}
