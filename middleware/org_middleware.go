package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/services"
)

// OrgMiddleware resolves the :orgId path parameter, verifies the
// authenticated user is a member, and stores the org and role on the context.
// Non-members get a 404 so org IDs cannot be probed. Use after AuthMiddleware.
func OrgMiddleware() gin.HandlerFunc {
	orgService := services.NewOrgService()

	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		orgID := c.Param("orgId")
		if orgID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Organization ID is required",
			})
			c.Abort()
			return
		}

		membership, err := orgService.GetMembership(userID.(string), orgID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Organization not found",
			})
			c.Abort()
			return
		}

		c.Set("orgId", orgID)
		c.Set("orgRole", membership.Role)

		c.Next()
	}
}
