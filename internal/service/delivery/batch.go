package delivery

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/notify"
)

// BatchStrategy sends first and writes every staged marker in one
// transaction at the end of the run. A marker is staged for each attempt,
// successful or not.
type BatchStrategy struct {
	tasks      domain.PersonalTaskRepository
	dispatcher notify.Dispatcher
}

func NewBatchStrategy(tasks domain.PersonalTaskRepository, dispatcher notify.Dispatcher) *BatchStrategy {
	return &BatchStrategy{
		tasks:      tasks,
		dispatcher: dispatcher,
	}
}

func (s *BatchStrategy) Name() string {
	return "batch"
}

func (s *BatchStrategy) Begin() Session {
	return &batchSession{strategy: s}
}

type batchSession struct {
	strategy *BatchStrategy
	staged   []domain.NotificationMark
}

func (b *batchSession) Deliver(ctx context.Context, req Request) (Outcome, error) {
	err := b.strategy.dispatcher.Send(ctx, req.Settings, req.Text)
	b.staged = append(b.staged, domain.NewNotificationMark(req.TaskID, req.Type, req.Now))

	if err != nil {
		return OutcomeFailed, err
	}
	return OutcomeSent, nil
}

func (b *batchSession) Flush(ctx context.Context) error {
	if len(b.staged) == 0 {
		return nil
	}

	marks := b.staged
	b.staged = nil

	if err := b.strategy.tasks.SaveNotificationMarks(ctx, marks); err != nil {
		return err
	}

	slog.DebugContext(ctx, "staged notification markers flushed",
		slog.Int("count", len(marks)),
	)
	return nil
}
