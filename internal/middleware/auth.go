package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-userreg/internal/auth"
	"go-userreg/internal/shared/apperror"
	"go-userreg/internal/shared/contextutil"
	"go-userreg/internal/shared/response"
)

// Gin context keys set after a successful credential check.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// DefaultPublicPaths are reachable without a credential: the service
// banner, health probe, and documentation endpoints.
var DefaultPublicPaths = []string{"/", "/health", "/docs", "/swagger"}

func isPublicPath(path string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// extractToken checks the credential carriers in fixed order: the
// Authorization bearer header, the X-API-Key header, then the token
// query parameter. First non-empty candidate wins.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if bearer, found := strings.CutPrefix(authHeader, "Bearer "); found {
		if tok := strings.TrimSpace(bearer); tok != "" {
			return tok
		}
	}

	if tok := strings.TrimSpace(c.GetHeader("X-API-Key")); tok != "" {
		return tok
	}

	if tok := strings.TrimSpace(c.Query("token")); tok != "" {
		return tok
	}

	return ""
}

// TokenAuth rejects protected requests that do not carry a member of
// the fixed token table. Rejections are written here directly and
// short-circuit the chain; they are normal outcomes, not faults, so
// they never reach the error-handling stage.
func TokenAuth(table *auth.TokenTable, publicPaths []string, logger *zap.Logger) gin.HandlerFunc {
	if publicPaths == nil {
		publicPaths = DefaultPublicPaths
	}
	l := logger.Named("auth")

	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path, publicPaths) {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			l.Warn("request rejected, token required",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication token is required")
			c.Abort()
			return
		}

		identity, ok := table.Lookup(token)
		if !ok {
			l.Warn("request rejected, invalid token",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid authentication token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, identity.UserID)
		c.Set(CtxUserRole, identity.Role)

		ctx := contextutil.WithIdentity(c.Request.Context(), identity.UserID, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
