package domain

import "time"

// RunRecord summarizes one reminder job invocation.
type RunRecord struct {
	RunID             string                       `json:"run_id"`
	StartedAt         time.Time                    `json:"started_at"`
	FinishedAt        time.Time                    `json:"finished_at"`
	EvaluatedAt       time.Time                    `json:"evaluated_at"`
	Strategy          string                       `json:"strategy"`
	ProcessedCount    int                          `json:"processed_count"`
	NotificationCount int                          `json:"notification_count"`
	FailedCount       int                          `json:"failed_count"`
	SkippedCount      int                          `json:"skipped_count"`
	ByType            map[ReminderType]TypeOutcome `json:"by_type,omitempty"`
	Error             string                       `json:"error,omitempty"`
}

type TypeOutcome struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func (r *RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
