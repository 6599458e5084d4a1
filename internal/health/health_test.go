package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestChecker_Check(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	down := PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus Status
	}{
		{name: "no dependencies", deps: nil, wantStatus: StatusHealthy},
		{name: "all healthy", deps: map[string]Pinger{"redis": ok, "postgres": ok}, wantStatus: StatusHealthy},
		{name: "one unhealthy", deps: map[string]Pinger{"redis": ok, "postgres": down}, wantStatus: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker("test")
			for name, p := range tt.deps {
				checker.With(name, p)
			}

			status := checker.Check(context.Background())
			if status.Status != tt.wantStatus {
				t.Errorf("got %q, want %q", status.Status, tt.wantStatus)
			}
			if len(status.Checks) != len(tt.deps) {
				t.Errorf("got %d checks, want %d", len(status.Checks), len(tt.deps))
			}
		})
	}
}

func TestChecker_ReadyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checker := NewChecker("v1").
		With("postgres", PingerFunc(func(context.Context) error { return errors.New("timeout") })).
		With("ignored", nil)

	r := gin.New()
	r.GET("/health/ready", checker.ReadyHandler())
	r.GET("/health/live", checker.LiveHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("ready: got %d, want 503", w.Code)
	}

	var body HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Checks["postgres"].Error != "timeout" {
		t.Errorf("unexpected checks: %+v", body.Checks)
	}
	if _, ok := body.Checks["ignored"]; ok {
		t.Error("nil pinger should not be registered")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if w.Code != http.StatusOK {
		t.Errorf("live: got %d, want 200", w.Code)
	}
}
