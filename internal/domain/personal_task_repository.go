package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=personal_task_repository.go -destination=personal_task_repository_mock.go -package=domain

type PersonalTaskRepository interface {
	FindIncomplete(ctx context.Context) ([]*PersonalTask, error)
	// SaveNotificationMarks returns ErrTaskNotFound when some tasks no longer
	// exist; marks for the rest are still saved.
	SaveNotificationMarks(ctx context.Context, marks []NotificationMark) error
	// ClaimNotification stamps the marker only if the cooldown since the
	// previous stamp has elapsed and the task is still incomplete.
	ClaimNotification(ctx context.Context, taskID string, rt ReminderType, now time.Time, cooldown time.Duration) (bool, error)
	// ReleaseNotification restores previous when the marker still equals claimedAt.
	ReleaseNotification(ctx context.Context, taskID string, rt ReminderType, claimedAt time.Time, previous *time.Time) error
}
