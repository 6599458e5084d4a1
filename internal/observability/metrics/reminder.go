package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const reminderMeterName = "reminder.service"

type ReminderMetrics struct {
	notifications  metric.Int64Counter
	tasksProcessed metric.Int64Counter
	runDuration    metric.Float64Histogram
	runsSkipped    metric.Int64Counter
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	notifications, err := meter.Int64Counter(
		"reminder_notifications_total",
		metric.WithDescription("Reminder notifications by type and outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	tasksProcessed, err := meter.Int64Counter(
		"reminder_tasks_processed_total",
		metric.WithDescription("Incomplete tasks evaluated"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"reminder_run_duration_seconds",
		metric.WithDescription("Reminder job run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	runsSkipped, err := meter.Int64Counter(
		"reminder_runs_skipped_total",
		metric.WithDescription("Runs skipped because another run held the lock"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		notifications:  notifications,
		tasksProcessed: tasksProcessed,
		runDuration:    runDuration,
		runsSkipped:    runsSkipped,
	}, nil
}

// All methods are safe on a nil receiver so tests can omit metrics.

func (m *ReminderMetrics) RecordNotification(ctx context.Context, reminderType, strategy, outcome string) {
	if m == nil {
		return
	}
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reminder_type", reminderType),
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordTasksProcessed(ctx context.Context, count int) {
	if m == nil {
		return
	}
	m.tasksProcessed.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordRunDuration(ctx context.Context, duration time.Duration, status string) {
	if m == nil {
		return
	}
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("status", status),
	))
}

func (m *ReminderMetrics) RecordRunSkipped(ctx context.Context) {
	if m == nil {
		return
	}
	m.runsSkipped.Add(ctx, 1)
}
