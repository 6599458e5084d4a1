package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
)

type GinConfig struct {
	// SkipPaths are paths that skip observability
	SkipPaths []string
	Module    logging.Module
	// Worker switches start/finish logs to job.* events
	Worker          bool
	JobNameResolver func(*gin.Context) string
	TracerName      string
	HTTPMetrics     *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get("x-request-id"))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}
		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, path))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header("x-request-id", requestID)
		c.Request.Header.Set("x-request-id", requestID)

		finishEvent := "http.request.finish"
		finishMessage := "request completed"
		jobName := ""

		if cfg.Worker {
			finishEvent = "job.finish"
			finishMessage = "job finished"

			if cfg.JobNameResolver != nil {
				jobName = cfg.JobNameResolver(c)
			}
			if jobName == "" {
				jobName = c.Request.URL.Path
			}

			slog.LogAttrs(ctx, slog.LevelInfo, "job started",
				slog.String("event", "job.start"),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("remote_addr", c.ClientIP()),
				slog.String("job.name", jobName),
				slog.String("job.id", requestID),
			)
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.response.status_code", status))

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, path, status, duration)
		}

		finishAttrs := []slog.Attr{
			slog.String("event", finishEvent),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		if cfg.Worker {
			finishAttrs = append(finishAttrs,
				slog.String("job.name", jobName),
				slog.String("job.id", requestID),
			)
		}

		slog.LogAttrs(ctx, slog.LevelInfo, finishMessage, finishAttrs...)
	}
}
