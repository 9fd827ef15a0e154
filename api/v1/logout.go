package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout ends a browser session by expiring the auth cookie. Bearer tokens
// stay valid until they expire; clients just drop them.
func Logout(c *gin.Context) {
	c.SetCookie(
		"access_token",
		"",
		-1, // expire immediately
		"/",
		"",
		true, // HTTPS only
		true, // not readable from JS
	)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}
