package delivery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/notify"
)

// ClaimStrategy stamps the marker with a conditional update before sending.
// Only one run can win the claim for a given window.
type ClaimStrategy struct {
	tasks      domain.PersonalTaskRepository
	dispatcher notify.Dispatcher
}

func NewClaimStrategy(tasks domain.PersonalTaskRepository, dispatcher notify.Dispatcher) *ClaimStrategy {
	return &ClaimStrategy{
		tasks:      tasks,
		dispatcher: dispatcher,
	}
}

func (s *ClaimStrategy) Name() string {
	return "claim"
}

func (s *ClaimStrategy) Begin() Session {
	return &claimSession{strategy: s}
}

type claimSession struct {
	strategy *ClaimStrategy
}

func (c *claimSession) Deliver(ctx context.Context, req Request) (Outcome, error) {
	s := c.strategy

	claimed, err := s.tasks.ClaimNotification(ctx, req.TaskID, req.Type, req.Now, req.Cooldown)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("claim notification: %w", err)
	}
	if !claimed {
		slog.DebugContext(ctx, "notification already claimed",
			slog.String("task_id", req.TaskID),
			slog.String("reminder_type", req.Type.String()),
		)
		return OutcomeSkipped, nil
	}

	if err := s.dispatcher.Send(ctx, req.Settings, req.Text); err != nil {
		// give the slot back so the next poll retries, even when ctx has ended
		if relErr := s.tasks.ReleaseNotification(context.WithoutCancel(ctx), req.TaskID, req.Type, req.Now, req.Previous); relErr != nil {
			slog.ErrorContext(ctx, "failed to release notification claim",
				slog.String("event", "reminder.claim.release.fail"),
				slog.String("task_id", req.TaskID),
				slog.String("reminder_type", req.Type.String()),
				slog.String("error", relErr.Error()),
			)
		}
		return OutcomeFailed, err
	}

	return OutcomeSent, nil
}

func (c *claimSession) Flush(_ context.Context) error {
	return nil
}
