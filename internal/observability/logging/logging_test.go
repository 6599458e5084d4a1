package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := "0b9e6f1c-8d0a-4a8e-9c67-6b1c0c6c1f9a"
	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("got %q, want %q", got, valid)
	}

	for _, input := range []string{"", "not-a-uuid"} {
		got := ValidateAndExtractRequestID(input)
		if got == input || len(got) != 36 {
			t.Errorf("input %q: expected generated uuid, got %q", input, got)
		}
	}
}

func TestHandler_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Config{
		Service:       ServiceInfo{Name: "deadline-reminder", Version: "test"},
		Environment:   EnvDev,
		DefaultModule: Module("deadline-reminder"),
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithModule(ctx, Module("reminder"))
	logger.WarnContext(ctx, "hello", slog.String("event", "test.event"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log: %v", err)
	}

	checks := map[string]string{
		"message":    "hello",
		"severity":   "WARNING",
		"request_id": "req-1",
		"module":     "reminder",
		"env":        "dev",
		"event":      "test.event",
	}
	for key, want := range checks {
		if got, _ := entry[key].(string); got != want {
			t.Errorf("%s: got %q, want %q", key, got, want)
		}
	}

	service, ok := entry["service"].(map[string]any)
	if !ok || service["name"] != "deadline-reminder" {
		t.Errorf("unexpected service group: %v", entry["service"])
	}
}

func TestHandler_DefaultModule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Config{DefaultModule: Module("deadline-reminder")}))

	logger.Info("no context")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log: %v", err)
	}
	if entry["module"] != "deadline-reminder" {
		t.Errorf("got module %v", entry["module"])
	}
	if _, ok := entry["request_id"]; ok {
		t.Error("request_id should be absent without context value")
	}
}
