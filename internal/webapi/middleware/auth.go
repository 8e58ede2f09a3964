package middleware

import (
	"strings"

	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware and read by the policy guard
// and handlers.
const (
	CtxUserID = "userID"
	CtxOpenID = "openID"
	CtxRole   = "role"
)

// Session resolves the caller's identity from the session cookie (or a
// Bearer token for non-browser clients) and stubs it into the gin context.
// It never aborts: anonymous requests pass through with no identity set and
// the policy guard decides what they may reach.
func Session(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			tokenString = cookie
		} else if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			// format: "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			// expired or tampered session, treat as anonymous
			c.Next()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxOpenID, claims.OpenID)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// CallerID returns the authenticated caller's user id, or false when the
// request carries no verified identity.
func CallerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CallerRole returns the caller's role, defaulting to empty for anonymous
// requests.
func CallerRole(c *gin.Context) string {
	v, exists := c.Get(CtxRole)
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
