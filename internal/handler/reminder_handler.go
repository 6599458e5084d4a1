package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

const runIDHeader = "X-Run-ID"

type DeadlineService interface {
	ProcessDeadlines(ctx context.Context, now time.Time, runID string) (*reminder.Response, error)
	GetLastRun(ctx context.Context) (*domain.RunRecord, error)
}

type checkResponse struct {
	Message           string `json:"message"`
	RunID             string `json:"run_id"`
	Skipped           bool   `json:"skipped,omitempty"`
	ProcessedCount    int    `json:"processed_count"`
	NotificationCount int    `json:"notification_count"`
	FailedCount       int    `json:"failed_count"`
	SkippedCount      int    `json:"skipped_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type ReminderHandler struct {
	service    DeadlineService
	jobTimeout time.Duration
}

func NewReminderHandler(service DeadlineService, jobTimeout time.Duration) *ReminderHandler {
	return &ReminderHandler{
		service:    service,
		jobTimeout: jobTimeout,
	}
}

func (h *ReminderHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/api/v1/reminders/deadlines")
	group.POST("/check", h.HandleCheck)
	group.GET("/check", h.HandleCheck)
	group.GET("/last-run", h.HandleLastRun)
}

// HandleCheck runs the deadline job once. ?now=RFC3339 replaces the clock.
func (h *ReminderHandler) HandleCheck(c *gin.Context) {
	ctx := c.Request.Context()

	now := time.Now()
	if nowStr := c.Query("now"); nowStr != "" {
		parsed, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid now time format, expected RFC3339")
			return
		}
		now = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	}

	runID := c.GetHeader(runIDHeader)
	if runID == "" {
		runID = uuid.NewString()
	}

	if h.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.jobTimeout)
		defer cancel()
	}

	result, err := h.service.ProcessDeadlines(ctx, now, runID)
	if err != nil {
		slog.ErrorContext(ctx, "deadline check failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, checkResponse{
		Message:           result.Message,
		RunID:             result.RunID,
		Skipped:           result.Skipped,
		ProcessedCount:    result.ProcessedCount,
		NotificationCount: result.NotificationCount,
		FailedCount:       result.FailedCount,
		SkippedCount:      result.SkippedCount,
	})
}

func (h *ReminderHandler) HandleLastRun(c *gin.Context) {
	ctx := c.Request.Context()

	run, err := h.service.GetLastRun(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			respondError(c, http.StatusNotFound, "no run recorded yet")
			return
		}
		slog.ErrorContext(ctx, "failed to load last run",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to load last run")
		return
	}

	c.JSON(http.StatusOK, run)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}
