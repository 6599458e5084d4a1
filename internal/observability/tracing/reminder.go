package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartRunSpan(ctx context.Context, runID string, now time.Time, strategy string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("run.now", now.Format(time.RFC3339)),
			attribute.String("run.strategy", strategy),
		),
	)
}

func StartDeliverySpan(ctx context.Context, taskID, reminderType string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.deliver",
		trace.WithAttributes(
			attribute.String("task.id", taskID),
			attribute.String("reminder.type", reminderType),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, host string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("server.address", host),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRunResult(span trace.Span, processed, sent, failed, skipped int, err error) {
	span.SetAttributes(
		attribute.Int("run.processed_count", processed),
		attribute.Int("run.notification_count", sent),
		attribute.Int("run.failed_count", failed),
		attribute.Int("run.skipped_count", skipped),
	)
	RecordError(span, err)
}

func RecordDeliveryResult(span trace.Span, outcome string, err error) {
	span.SetAttributes(attribute.String("delivery.outcome", outcome))
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
