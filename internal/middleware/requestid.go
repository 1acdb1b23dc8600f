package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader carries the request ID back to the caller.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a fresh server-generated UUID. The ID is
// attached to the gin context for log correlation and echoed in the response
// header. Client-supplied X-Request-ID values are ignored.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
