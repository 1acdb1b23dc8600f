package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets the baseline security response headers. The dashboard
// renders attendance data that must never be served from a shared cache.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
