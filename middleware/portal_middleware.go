package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/services"
)

// PortalMiddleware authenticates portal requests via the X-Portal-Token
// header or the token query parameter. Unknown, expired and revoked tokens
// all read as 404.
func PortalMiddleware() gin.HandlerFunc {
	portalService := services.NewPortalService()

	return func(c *gin.Context) {
		raw := c.GetHeader("X-Portal-Token")
		if raw == "" {
			raw = c.Query("token")
		}

		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Portal token is required",
			})
			c.Abort()
			return
		}

		record, err := portalService.Validate(raw)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Not found",
			})
			c.Abort()
			return
		}

		c.Set("portalToken", record)

		c.Next()
	}
}
