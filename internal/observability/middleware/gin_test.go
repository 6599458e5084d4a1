package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
)

func TestGin_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Gin(GinConfig{Module: logging.Module("test"), Worker: true}))

	var seen string
	r.POST("/job", func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	const id = "7f0c4a3e-2a41-4b7e-9a57-1e0f4f6e0d11"
	req := httptest.NewRequest(http.MethodPost, "/job", nil)
	req.Header.Set("x-request-id", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != id {
		t.Errorf("handler saw request id %q, want %q", seen, id)
	}
	if got := w.Header().Get("x-request-id"); got != id {
		t.Errorf("response request id %q, want %q", got, id)
	}
}

func TestGin_SkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Gin(GinConfig{SkipPaths: []string{"/health"}}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("x-request-id") != "" {
		t.Error("skipped path should not receive a request id header")
	}
}
