package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zer0x25/reloj-control/internal/httputil"
)

// PINHeader carries the shared admin PIN on roster-editing requests.
const PINHeader = "X-Admin-PIN"

// PINGate returns middleware that compares the request's PIN header against
// the configured shared secret. The PIN is a casual deterrent against idle
// front-desk edits, not a security boundary: there is no hashing, no rate
// limiting, and every operator shares the same value.
func PINGate(pin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(PINHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(pin)) != 1 {
			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized", "missing or incorrect admin PIN")

			return
		}

		c.Next()
	}
}
