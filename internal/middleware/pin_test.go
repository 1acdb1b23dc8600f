package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zer0x25/reloj-control/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPINGate(t *testing.T) {
	r := gin.New()
	r.Use(middleware.PINGate("1234"))
	r.POST("/protected", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name       string
		pin        string
		wantStatus int
	}{
		{"correct pin", "1234", http.StatusNoContent},
		{"wrong pin", "9999", http.StatusUnauthorized},
		{"missing pin", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", http.NoBody)
			if tt.pin != "" {
				req.Header.Set(middleware.PINHeader, tt.pin)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
