package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates access
// tokens. The token is read from the Authorization header or, failing that,
// the named cookie.
func AuthMiddleware(accessTokenSecret, accessTokenCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := extractToken(c, accessTokenCookieName)
		if !ok {
			logger.Warn("Authorization token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := parseAccessToken(tokenString, accessTokenSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		attachUserID(c, claims.Subject)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the viewer's user ID when a valid access
// token is present and otherwise lets the request through anonymously. Used
// by the channel profile endpoint, where IsSubscribed is simply false for
// anonymous viewers.
func OptionalAuthMiddleware(accessTokenSecret, accessTokenCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c, accessTokenCookieName)
		if !ok {
			c.Next()
			return
		}

		claims, err := parseAccessToken(tokenString, accessTokenSecret)
		if err != nil || claims.Subject == "" {
			// Anonymous access is fine here; a bad token just means no viewer.
			c.Next()
			return
		}

		attachUserID(c, claims.Subject)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], true
		}
		return "", false
	}

	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie, true
		}
	}
	return "", false
}

func parseAccessToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

func attachUserID(c *gin.Context, userID string) {
	ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)

	enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))
	ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

	c.Request = c.Request.WithContext(ctxWithLoggerAndUser)
}
