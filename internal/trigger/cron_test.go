package trigger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

type countingJob struct {
	calls  int
	runIDs []string
	err    error
}

func (j *countingJob) ProcessDeadlines(ctx context.Context, _ time.Time, runID string) (*reminder.Response, error) {
	j.calls++
	j.runIDs = append(j.runIDs, runID)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected a deadline")
	}
	return &reminder.Response{RunID: runID}, j.err
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	if _, err := NewScheduler("every minute please", &countingJob{}, time.Minute, nil); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	job := &countingJob{}
	s, err := NewScheduler("*/5 * * * *", job, time.Minute, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	if job.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", job.calls)
	}
	if job.runIDs[0] == job.runIDs[1] {
		t.Error("expected a fresh run id per tick")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler("@every 1h", &countingJob{}, time.Minute, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start(context.Background())
	if len(s.cron.Entries()) != 1 {
		t.Errorf("expected 1 entry, got %d", len(s.cron.Entries()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
