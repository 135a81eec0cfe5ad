package handlers

import "github.com/gin-gonic/gin"

// currentUserID returns the authenticated caller set by middleware.AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
