// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// RespondError writes the service's JSON error envelope and aborts the
// handler chain. The request ID is included when the middleware set one.
func RespondError(c *gin.Context, status int, code, message string) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if rid := c.GetString("request_id"); rid != "" {
		body["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, body)
}
