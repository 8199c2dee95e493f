package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/auctionbay/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingAuthHeader = errors.New("authorization header missing")
	errBadAuthHeader     = errors.New("authorization header is not a bearer token")
)

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, err := authenticate(c, jwtSecret)
		if err != nil {
			logger.Warn("Authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": publicAuthMessage(err)})
			return
		}

		attachUser(c, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a bearer token is present
// and lets anonymous requests through. An invalid token is still rejected.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		userID, err := authenticate(c, jwtSecret)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Optional authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": publicAuthMessage(err)})
			return
		}

		attachUser(c, userID)
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtSecret string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errBadAuthHeader
	}

	return utils.SubjectFromToken(parts[1], jwtSecret)
}

// attachUser stores the user ID and a user-enriched logger on the request context.
func attachUser(c *gin.Context, userID string) {
	ctx := WithUserID(c.Request.Context(), userID)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
}

func publicAuthMessage(err error) string {
	switch {
	case errors.Is(err, errMissingAuthHeader):
		return "Authorization header required"
	case errors.Is(err, errBadAuthHeader):
		return "Authorization header format must be Bearer {token}"
	case errors.Is(err, utils.ErrInvalidTokenClaims):
		return "Invalid token claims"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	default:
		return "Invalid token"
	}
}
