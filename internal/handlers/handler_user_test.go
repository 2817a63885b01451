package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vidstream/vidstream_backend/internal/core/domain"
	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/dto"
	"github.com/vidstream/vidstream_backend/internal/handlers"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
	"github.com/vidstream/vidstream_backend/internal/utils"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	cfg             *config.Config
	mockUserService *MockUserService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = testConfig()
	suite.mockUserService = new(MockUserService)

	services := &portssvc.ServiceContainer{
		Session:      new(MockSessionService),
		Registration: new(MockRegistrationService),
		Profile:      new(MockProfileService),
		Subscription: new(MockSubscriptionService),
		User:         suite.mockUserService,
	}
	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_Success() {
	userID := uuid.NewString()
	user := &domain.User{
		UserID:    userID,
		Username:  "alice",
		Email:     "alice@example.com",
		FullName:  "Alice Example",
		AvatarURL: "https://assets.example.com/a.png",
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()

	token, err := utils.GenerateJWT(userID, suite.cfg.AccessTokenSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.Equal("alice", resp.Username)
	// The response type has no credential fields at all.
	suite.NotContains(w.Body.String(), "passwordHash")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_AccessTokenCookie() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "alice"}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()

	token, err := utils.GenerateJWT(userID, suite.cfg.AccessTokenSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: suite.cfg.AccessTokenCookieName, Value: token})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_ExpiredToken() {
	userID := uuid.NewString()

	token, err := utils.GenerateJWT(userID, suite.cfg.AccessTokenSecret, -time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
