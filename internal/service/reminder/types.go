package reminder

import (
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/delivery"
)

type ResultItem struct {
	TaskID       string              `json:"task_id"`
	ReminderType domain.ReminderType `json:"reminder_type"`
	DueAt        time.Time           `json:"due_at"`
	Outcome      delivery.Outcome    `json:"outcome"`
	SkipReason   string              `json:"skip_reason,omitempty"`
	Error        string              `json:"error,omitempty"`
}

type Response struct {
	RunID             string       `json:"run_id"`
	Message           string       `json:"message"`
	Skipped           bool         `json:"skipped,omitempty"`
	ProcessedCount    int          `json:"processed_count"`
	NotificationCount int          `json:"notification_count"`
	FailedCount       int          `json:"failed_count"`
	SkippedCount      int          `json:"skipped_count"`
	Results           []ResultItem `json:"results"`
}

const (
	skipReasonNotConfigured = "telegram settings not configured"
	skipReasonClaimed       = "claimed by another run"

	messageCompleted  = "deadline check completed"
	messageRunSkipped = "another run is in progress"
)
