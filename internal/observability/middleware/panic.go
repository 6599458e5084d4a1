package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PanicRecoveryGin logs the panic and re-panics so gin.Recovery writes the response.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.String("event", "app.panic"),
					slog.Any("error", rec),
					slog.String("path", c.Request.URL.Path),
				)

				c.AbortWithStatus(http.StatusInternalServerError)

				panic(rec)
			}
		}()

		c.Next()
	}
}
