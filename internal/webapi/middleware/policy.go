package middleware

import (
	"net/http"

	"mangarate/internal/webapi/models"

	"github.com/gin-gonic/gin"
)

// AccessLevel orders the three caller classes the API distinguishes.
type AccessLevel int

const (
	AccessPublic AccessLevel = iota
	AccessUser
	AccessAdmin
)

// Policy is the single authorization table for the whole API: operation
// class to minimum access level. Handlers never carry inline role checks, so
// the rules cannot drift between procedures.
var Policy = map[string]AccessLevel{
	"works.read":         AccessPublic,
	"works.write":        AccessAdmin,
	"ratings.read":       AccessPublic,
	"ratings.write":      AccessUser,
	"reviews.read":       AccessPublic,
	"reviews.write":      AccessUser,
	"readingLinks.read":  AccessPublic,
	"readingLinks.write": AccessAdmin,
	"favorites.read":     AccessUser,
	"favorites.write":    AccessUser,
	"upload.write":       AccessAdmin,
}

// Require guards a route with the policy entry for the given operation
// class. A missing identity yields 401, an insufficient role 403 - distinct
// outcomes clients branch on. Unknown operations fail closed to admin.
func Require(operation string) gin.HandlerFunc {
	level, known := Policy[operation]
	if !known {
		level = AccessAdmin
	}

	return func(c *gin.Context) {
		if level == AccessPublic {
			c.Next()
			return
		}

		if _, authenticated := CallerID(c); !authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if level == AccessAdmin && CallerRole(c) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
