package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key under which requireAuth stores the
// authenticated user id.
const userIDKey = "userID"

// requireAuth is the guard in front of every protected endpoint. It extracts
// the token from the auth header, verifies it and attaches the asserted user
// id to the request context. Any failure short-circuits the request with a
// 401 body carrying only the failure kind, never internals.
func (s *HTTPServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AuthTokenHeaderName)

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgNoToken})
				return
			}
			// expired and malformed tokens are indistinguishable on the wire
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgTokenNotValid})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the user id attached by requireAuth.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
