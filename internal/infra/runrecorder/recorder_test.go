package runrecorder

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("RUN_RESULTS_DISABLED", "true")
	t.Setenv("INFLUXDB_BUCKET", "")
	t.Setenv("BIGQUERY_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "my-project")

	cfg := LoadConfig()

	if !cfg.Disabled {
		t.Error("expected recorder to be disabled")
	}
	if cfg.InfluxDBBucket != "reminder_runs" {
		t.Errorf("unexpected bucket: %s", cfg.InfluxDBBucket)
	}
	if cfg.BigQueryProjectID != "my-project" {
		t.Errorf("expected project fallback to GOOGLE_CLOUD_PROJECT, got %s", cfg.BigQueryProjectID)
	}
}

func TestNewRecorder_DisabledReturnsNoop(t *testing.T) {
	rec, err := NewRecorder(context.Background(), &Config{Disabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rec.(*noopRecorder); !ok {
		t.Errorf("expected noop recorder, got %T", rec)
	}
}

func TestNewRecorder_UnconfiguredReturnsNoop(t *testing.T) {
	rec, err := NewRecorder(context.Background(), &Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rec.(*noopRecorder); !ok {
		t.Errorf("expected noop recorder, got %T", rec)
	}
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	ctx := context.Background()

	records := []domain.RunResultRecord{
		{RunID: "run-1", RunAt: time.Now(), ReminderType: domain.ReminderAtDueTime, SentCount: 1},
	}

	if err := rec.RecordRunResults(ctx, records); err != nil {
		t.Errorf("RecordRunResults: %v", err)
	}
	if err := rec.Flush(ctx); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
