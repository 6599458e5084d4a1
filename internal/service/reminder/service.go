package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/delivery"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/notify"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/window"
)

const defaultRunLockTTL = 5 * time.Minute

type Service struct {
	tasks           domain.PersonalTaskRepository
	settings        domain.SettingsRepository
	evaluator       *window.Evaluator
	strategy        delivery.Strategy
	runLock         domain.RunLock
	runHistory      domain.RunHistory
	recorder        domain.RunResultRecorder
	reminderMetrics *metrics.ReminderMetrics

	location   *time.Location
	runLockTTL time.Duration
	clock      func() time.Time
}

// NewService wires the job. runLock, runHistory, recorder and
// reminderMetrics may be nil.
func NewService(
	tasks domain.PersonalTaskRepository,
	settings domain.SettingsRepository,
	evaluator *window.Evaluator,
	strategy delivery.Strategy,
	runLock domain.RunLock,
	runHistory domain.RunHistory,
	recorder domain.RunResultRecorder,
	reminderMetrics *metrics.ReminderMetrics,
	cfg *config.ReminderConfig,
) *Service {
	loc := time.UTC
	lockTTL := defaultRunLockTTL
	if cfg != nil {
		if cfg.Location != nil {
			loc = cfg.Location
		}
		if cfg.RunLockTTL > 0 {
			lockTTL = cfg.RunLockTTL
		}
	}

	return &Service{
		tasks:           tasks,
		settings:        settings,
		evaluator:       evaluator,
		strategy:        strategy,
		runLock:         runLock,
		runHistory:      runHistory,
		recorder:        recorder,
		reminderMetrics: reminderMetrics,
		location:        loc,
		runLockTTL:      lockTTL,
		clock:           time.Now,
	}
}

func (s *Service) GetLastRun(ctx context.Context) (*domain.RunRecord, error) {
	if s.runHistory == nil {
		return nil, domain.ErrRunNotFound
	}
	return s.runHistory.GetLastRun(ctx)
}

// ProcessDeadlines evaluates every incomplete task against now and delivers
// the reminders that are due. Only fetch failures fail the run; a failed
// notification is counted and the run continues.
func (s *Service) ProcessDeadlines(ctx context.Context, now time.Time, runID string) (*Response, error) {
	ctx, span := tracing.StartRunSpan(ctx, runID, now, s.strategy.Name())
	defer span.End()

	startedAt := s.clock()

	slog.InfoContext(ctx, "deadline check started",
		slog.String("event", "job.start"),
		slog.String("run_id", runID),
		slog.Time("now", now),
		slog.String("strategy", s.strategy.Name()),
		slog.String("suppression", s.evaluator.PolicyName()),
	)

	if s.runLock != nil {
		acquired, err := s.runLock.Acquire(ctx, runID, s.runLockTTL)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "failed to acquire run lock, continuing without it",
				slog.String("event", "job.lock.fail"),
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
		case !acquired:
			slog.InfoContext(ctx, "another deadline check is in progress, skipping",
				slog.String("event", "job.skip"),
				slog.String("run_id", runID),
			)
			s.reminderMetrics.RecordRunSkipped(ctx)
			tracing.RecordRunResult(span, 0, 0, 0, 0, nil)
			return &Response{
				RunID:   runID,
				Message: messageRunSkipped,
				Skipped: true,
				Results: []ResultItem{},
			}, nil
		default:
			defer s.releaseLock(ctx, runID)
		}
	}

	run := &domain.RunRecord{
		RunID:       runID,
		StartedAt:   startedAt,
		EvaluatedAt: now,
		Strategy:    s.strategy.Name(),
		ByType:      make(map[domain.ReminderType]domain.TypeOutcome),
	}

	settings, deliveryEnabled, err := s.loadSettings(ctx)
	if err != nil {
		s.fail(ctx, run, err)
		tracing.RecordRunResult(span, 0, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to fetch telegram settings: %w", err)
	}

	tasks, err := s.tasks.FindIncomplete(ctx)
	if err != nil {
		s.fail(ctx, run, err)
		tracing.RecordRunResult(span, 0, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to fetch incomplete tasks: %w", err)
	}

	slog.DebugContext(ctx, "fetched incomplete tasks",
		slog.Int("count", len(tasks)),
	)

	resp := &Response{
		RunID:   runID,
		Results: make([]ResultItem, 0),
	}

	session := s.strategy.Begin()
	var runErr error

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "deadline check interrupted",
				slog.String("run_id", runID),
				slog.Int("processed_count", resp.ProcessedCount),
				slog.String("error", err.Error()),
			)
			runErr = err
			break
		}

		if task.IsCompleted {
			continue
		}
		resp.ProcessedCount++

		due := task.DueInstant(s.location)
		for _, decision := range s.evaluator.Evaluate(now, due, task.ReminderPreferences, task.LastNotified) {
			if !decision.Fire {
				continue
			}

			item := s.deliver(ctx, session, task, decision, due, now, settings, deliveryEnabled)
			resp.Results = append(resp.Results, item)

			outcome := run.ByType[decision.Type]
			switch item.Outcome {
			case delivery.OutcomeSent:
				resp.NotificationCount++
				outcome.Sent++
			case delivery.OutcomeFailed:
				resp.FailedCount++
				outcome.Failed++
			case delivery.OutcomeSkipped:
				resp.SkippedCount++
				outcome.Skipped++
			}
			run.ByType[decision.Type] = outcome

			s.reminderMetrics.RecordNotification(ctx, decision.Type.String(), s.strategy.Name(), item.Outcome.String())
		}
	}

	// markers for notifications that already went out must land even if
	// the caller gave up
	if err := session.Flush(context.WithoutCancel(ctx)); errors.Is(err, domain.ErrTaskNotFound) {
		slog.WarnContext(ctx, "tasks removed during run, their markers were dropped",
			slog.String("event", "job.flush.missing"),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	} else if err != nil {
		slog.ErrorContext(ctx, "failed to persist notification markers",
			slog.String("event", "job.flush.fail"),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	s.reminderMetrics.RecordTasksProcessed(ctx, resp.ProcessedCount)

	run.ProcessedCount = resp.ProcessedCount
	run.NotificationCount = resp.NotificationCount
	run.FailedCount = resp.FailedCount
	run.SkippedCount = resp.SkippedCount
	if runErr != nil {
		run.Error = runErr.Error()
	}
	s.finish(ctx, run)

	tracing.RecordRunResult(span, resp.ProcessedCount, resp.NotificationCount, resp.FailedCount, resp.SkippedCount, runErr)

	slog.InfoContext(ctx, "deadline check finished",
		slog.String("event", "job.finish"),
		slog.String("run_id", runID),
		slog.Int("processed_count", resp.ProcessedCount),
		slog.Int("notification_count", resp.NotificationCount),
		slog.Int("failed_count", resp.FailedCount),
		slog.Int("skipped_count", resp.SkippedCount),
		slog.Duration("duration", run.Duration()),
	)

	if runErr != nil {
		resp.Message = runErr.Error()
		return resp, fmt.Errorf("deadline check interrupted: %w", runErr)
	}

	resp.Message = messageCompleted
	return resp, nil
}

// loadSettings reports whether delivery is possible. A missing or
// incomplete row disables delivery without failing the run.
func (s *Service) loadSettings(ctx context.Context) (*domain.TelegramSettings, bool, error) {
	settings, err := s.settings.GetTelegramSettings(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			slog.WarnContext(ctx, "telegram settings not found, notifications will be skipped",
				slog.String("event", "job.settings.missing"),
			)
			return nil, false, nil
		}
		return nil, false, err
	}

	if !settings.IsConfigured() {
		slog.WarnContext(ctx, "telegram settings incomplete, notifications will be skipped",
			slog.String("event", "job.settings.incomplete"),
		)
		return settings, false, nil
	}

	return settings, true, nil
}

func (s *Service) deliver(
	ctx context.Context,
	session delivery.Session,
	task *domain.PersonalTask,
	decision window.Decision,
	due, now time.Time,
	settings *domain.TelegramSettings,
	deliveryEnabled bool,
) ResultItem {
	item := ResultItem{
		TaskID:       task.ID,
		ReminderType: decision.Type,
		DueAt:        due,
	}

	if !deliveryEnabled {
		item.Outcome = delivery.OutcomeSkipped
		item.SkipReason = skipReasonNotConfigured
		return item
	}

	ctx, span := tracing.StartDeliverySpan(ctx, task.ID, decision.Type.String())
	defer span.End()

	outcome, err := session.Deliver(ctx, delivery.Request{
		TaskID:   task.ID,
		Type:     decision.Type,
		Now:      now,
		Cooldown: decision.Cooldown,
		Previous: decision.LastNotified,
		Settings: settings,
		Text:     notify.FormatMessage(task, decision.Type, due, s.location),
	})
	tracing.RecordDeliveryResult(span, outcome.String(), err)

	item.Outcome = outcome
	switch {
	case err != nil:
		item.Error = err.Error()
		slog.ErrorContext(ctx, "failed to deliver reminder",
			slog.String("event", "reminder.dispatch.fail"),
			slog.String("task_id", task.ID),
			slog.String("reminder_type", decision.Type.String()),
			slog.String("error", err.Error()),
		)
	case outcome == delivery.OutcomeSkipped:
		item.SkipReason = skipReasonClaimed
	default:
		slog.InfoContext(ctx, "reminder delivered",
			slog.String("event", "reminder.dispatch"),
			slog.String("task_id", task.ID),
			slog.String("reminder_type", decision.Type.String()),
		)
	}

	return item
}

func (s *Service) fail(ctx context.Context, run *domain.RunRecord, err error) {
	slog.ErrorContext(ctx, "deadline check failed",
		slog.String("event", "job.fail"),
		slog.String("run_id", run.RunID),
		slog.String("error", err.Error()),
	)
	run.Error = err.Error()
	s.finish(ctx, run)
}

// finish records the run in history and analytics. Neither failure is fatal.
func (s *Service) finish(ctx context.Context, run *domain.RunRecord) {
	ctx = context.WithoutCancel(ctx)
	run.FinishedAt = s.clock()

	status := "ok"
	if run.Error != "" {
		status = "error"
	}
	s.reminderMetrics.RecordRunDuration(ctx, run.Duration(), status)

	if s.runHistory != nil {
		if err := s.runHistory.SaveLastRun(ctx, run); err != nil {
			slog.WarnContext(ctx, "failed to save run history",
				slog.String("run_id", run.RunID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.recorder != nil {
		if err := s.recorder.RecordRunResults(ctx, domain.RunResultRecords(run)); err != nil {
			slog.WarnContext(ctx, "failed to record run results",
				slog.String("run_id", run.RunID),
				slog.String("error", err.Error()),
			)
		}
		if err := s.recorder.Flush(ctx); err != nil {
			slog.WarnContext(ctx, "failed to flush run results",
				slog.String("run_id", run.RunID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) releaseLock(ctx context.Context, runID string) {
	if err := s.runLock.Release(context.WithoutCancel(ctx), runID); err != nil {
		slog.WarnContext(ctx, "failed to release run lock",
			slog.String("event", "job.lock.release.fail"),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}
