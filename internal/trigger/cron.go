package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

type Job interface {
	ProcessDeadlines(ctx context.Context, now time.Time, runID string) (*reminder.Response, error)
}

// Scheduler runs the deadline job in-process on a cron schedule. Overlapping
// ticks are skipped.
type Scheduler struct {
	cron    *cron.Cron
	job     Job
	timeout time.Duration
	baseCtx context.Context
}

func NewScheduler(spec string, job Job, timeout time.Duration, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	logger := slogLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	s := &Scheduler{
		cron:    c,
		job:     job,
		timeout: timeout,
		baseCtx: context.Background(),
	}

	if _, err := c.AddFunc(spec, func() { s.RunOnce(s.baseCtx) }); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) Start(ctx context.Context) {
	s.baseCtx = logging.WithModule(ctx, logging.Module("scheduler"))
	s.cron.Start()

	slog.InfoContext(ctx, "in-process scheduler started",
		slog.Int("entries", len(s.cron.Entries())),
	)
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		slog.WarnContext(ctx, "scheduler stop timed out with a job still running")
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	runID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, runID)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.job.ProcessDeadlines(ctx, time.Now(), runID)
	if err != nil {
		slog.ErrorContext(ctx, "scheduled deadline check failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return
	}

	slog.DebugContext(ctx, "scheduled deadline check completed",
		slog.String("run_id", runID),
		slog.String("message", resp.Message),
	)
}

type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}
