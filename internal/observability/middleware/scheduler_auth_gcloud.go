//go:build gcloud

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
)

// SchedulerAuth validates the Google-signed OIDC token that Cloud Scheduler
// attaches to each trigger request.
func SchedulerAuth(ctx context.Context, cfg *config.TriggerConfig) (gin.HandlerFunc, error) {
	if cfg == nil || cfg.SchedulerAuthDisabled {
		slog.WarnContext(ctx, "scheduler authentication disabled")
		return func(c *gin.Context) { c.Next() }, nil
	}

	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, err
	}

	audience := cfg.SchedulerAudience

	return func(c *gin.Context) {
		reqCtx := c.Request.Context()

		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			slog.WarnContext(reqCtx, "scheduler request rejected",
				slog.String("event", "auth.scheduler.reject"),
				slog.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		payload, err := validator.Validate(reqCtx, token, audience)
		if err != nil {
			slog.WarnContext(reqCtx, "scheduler token validation failed",
				slog.String("event", "auth.scheduler.reject"),
				slog.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		email, _ := payload.Claims["email"].(string)
		slog.DebugContext(reqCtx, "scheduler request authenticated",
			slog.String("event", "auth.scheduler.accept"),
			slog.String("subject", payload.Subject),
			slog.String("email", email),
		)

		c.Next()
	}, nil
}
