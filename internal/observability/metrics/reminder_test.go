package metrics

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/delivery"
)

func TestReminderMetrics_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(mp)
	defer otel.SetMeterProvider(prev)

	m, err := NewReminderMetrics()
	if err != nil {
		t.Fatalf("NewReminderMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordNotification(ctx, "at_due_time", "claim", delivery.OutcomeSent.String())
	m.RecordNotification(ctx, "at_due_time", "claim", delivery.OutcomeFailed.String())
	m.RecordTasksProcessed(ctx, 3)
	m.RecordRunDuration(ctx, 150*time.Millisecond, "success")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			names[md.Name] = true
			if md.Name == "reminder_tasks_processed_total" {
				sum, ok := md.Data.(metricdata.Sum[int64])
				if !ok || len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 3 {
					t.Errorf("unexpected tasks processed data: %+v", md.Data)
				}
			}
		}
	}

	for _, want := range []string{"reminder_notifications_total", "reminder_tasks_processed_total", "reminder_run_duration_seconds"} {
		if !names[want] {
			t.Errorf("metric %s not collected", want)
		}
	}
}

func TestReminderMetrics_NilSafe(t *testing.T) {
	var m *ReminderMetrics
	ctx := context.Background()

	m.RecordNotification(ctx, "1h_before", "batch", delivery.OutcomeSkipped.String())
	m.RecordTasksProcessed(ctx, 1)
	m.RecordRunDuration(ctx, time.Second, "error")
	m.RecordRunSkipped(ctx)
}
