package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=run_result_recorder.go -destination=run_result_recorder_mock.go -package=domain

type RunResultRecord struct {
	RunID        string
	RunAt        time.Time
	Strategy     string
	ReminderType ReminderType
	SentCount    int
	FailedCount  int
	SkippedCount int
}

// RunResultRecords flattens a run into one row per reminder type.
func RunResultRecords(run *RunRecord) []RunResultRecord {
	if run == nil {
		return nil
	}

	records := make([]RunResultRecord, 0, len(run.ByType))
	for _, rt := range reminderTypes {
		outcome, ok := run.ByType[rt]
		if !ok {
			continue
		}
		records = append(records, RunResultRecord{
			RunID:        run.RunID,
			RunAt:        run.StartedAt,
			Strategy:     run.Strategy,
			ReminderType: rt,
			SentCount:    outcome.Sent,
			FailedCount:  outcome.Failed,
			SkippedCount: outcome.Skipped,
		})
	}
	return records
}

type RunResultRecorder interface {
	RecordRunResults(ctx context.Context, records []RunResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
