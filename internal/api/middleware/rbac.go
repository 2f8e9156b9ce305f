package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// Template permissions carried in JWT claims. Role-to-permission mapping
// happens in the identity provider.
const (
	PermissionTemplateRead     = "template:read"
	PermissionTemplateWrite    = "template:write"
	PermissionTemplateActivate = "template:activate"
	PermissionTemplateDelete   = "template:delete"
	PermissionPlatformAdmin    = "platform:admin"
)

// RequirePermission returns middleware that checks if the authenticated user
// has a specific permission from their claims.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get("permissions")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no permissions in context",
			})
			return
		}
		permList, ok := perms.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "invalid permissions type",
			})
			return
		}

		// platform:admin is the explicit super-admin permission.
		if slices.Contains(permList, PermissionPlatformAdmin) {
			c.Next()
			return
		}

		if slices.Contains(permList, permission) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient permissions",
		})
	}
}
