//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// Trace correlation fields are only understood by Cloud Logging.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
