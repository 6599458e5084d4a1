package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type personalTaskRepository struct {
	db *gorm.DB
}

func NewPersonalTaskRepository(db *gorm.DB) domain.PersonalTaskRepository {
	return &personalTaskRepository{
		db: db,
	}
}

// Postgres keeps microseconds; stamps are truncated so a later equality
// check against the same instant matches.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func (r *personalTaskRepository) FindIncomplete(ctx context.Context) ([]*domain.PersonalTask, error) {
	var models []PersonalTaskModel

	result := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Order("due_date ASC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to fetch incomplete personal tasks",
			slog.String("event", "db.tasks.fetch.fail"),
			slog.String("error", result.Error.Error()),
		)
		return nil, result.Error
	}

	tasks := make([]*domain.PersonalTask, 0, len(models))
	for i := range models {
		task, unknown, err := models[i].ToEntity()
		if err != nil {
			slog.WarnContext(ctx, "skipping personal task with invalid data",
				slog.String("event", "db.tasks.invalid"),
				slog.String("task_id", models[i].ID),
				slog.String("error", err.Error()),
			)
			continue
		}

		if len(unknown) > 0 {
			slog.WarnContext(ctx, "ignoring unknown reminder preferences",
				slog.String("task_id", task.ID),
				slog.Any("unknown", unknown),
			)
		}

		tasks = append(tasks, task)
	}

	slog.DebugContext(ctx, "incomplete personal tasks fetched",
		slog.Int("count", len(tasks)),
	)

	return tasks, nil
}

func (r *personalTaskRepository) SaveNotificationMarks(ctx context.Context, marks []domain.NotificationMark) error {
	if len(marks) == 0 {
		return nil
	}

	byTask := make(map[string]map[string]any)
	order := make([]string, 0)
	for _, mark := range marks {
		col, err := markColumn(mark.Type)
		if err != nil {
			return err
		}

		updates, ok := byTask[mark.TaskID]
		if !ok {
			updates = make(map[string]any)
			byTask[mark.TaskID] = updates
			order = append(order, mark.TaskID)
		}
		updates[col] = stamp(mark.At)
	}

	var missing []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		missing = missing[:0]
		for _, taskID := range order {
			result := tx.Model(&PersonalTaskModel{}).
				Where("id = ?", taskID).
				UpdateColumns(byTask[taskID])
			if result.Error != nil {
				return fmt.Errorf("update markers for task %s: %w", taskID, result.Error)
			}
			if result.RowsAffected == 0 {
				slog.WarnContext(ctx, "personal task vanished before markers were saved",
					slog.String("task_id", taskID),
				)
				missing = append(missing, taskID)
			}
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save notification markers",
			slog.String("event", "db.marks.save.fail"),
			slog.Int("count", len(marks)),
			slog.String("error", err.Error()),
		)
		return err
	}

	slog.DebugContext(ctx, "notification markers saved",
		slog.Int("marks", len(marks)),
		slog.Int("tasks", len(order)-len(missing)),
	)

	// markers for the remaining tasks are committed
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, strings.Join(missing, ", "))
	}

	return nil
}

func (r *personalTaskRepository) ClaimNotification(
	ctx context.Context,
	taskID string,
	rt domain.ReminderType,
	now time.Time,
	cooldown time.Duration,
) (bool, error) {
	col, err := markColumn(rt)
	if err != nil {
		return false, err
	}

	claimedAt := stamp(now)
	threshold := claimedAt.Add(-cooldown)

	result := r.db.WithContext(ctx).Model(&PersonalTaskModel{}).
		Where("id = ? AND is_completed = ?", taskID, false).
		Where(fmt.Sprintf("(%s IS NULL OR %s <= ?)", col, col), threshold).
		UpdateColumn(col, claimedAt)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to claim notification",
			slog.String("event", "db.claim.fail"),
			slog.String("task_id", taskID),
			slog.String("reminder_type", rt.String()),
			slog.String("error", result.Error.Error()),
		)
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *personalTaskRepository) ReleaseNotification(
	ctx context.Context,
	taskID string,
	rt domain.ReminderType,
	claimedAt time.Time,
	previous *time.Time,
) error {
	col, err := markColumn(rt)
	if err != nil {
		return err
	}

	var restore any
	if previous != nil {
		restore = stamp(*previous)
	}

	result := r.db.WithContext(ctx).Model(&PersonalTaskModel{}).
		Where("id = ?", taskID).
		Where(fmt.Sprintf("%s = ?", col), stamp(claimedAt)).
		UpdateColumn(col, restore)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to release notification claim",
			slog.String("event", "db.claim.release.fail"),
			slog.String("task_id", taskID),
			slog.String("reminder_type", rt.String()),
			slog.String("error", result.Error.Error()),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.DebugContext(ctx, "claim already superseded, nothing to release",
			slog.String("task_id", taskID),
			slog.String("reminder_type", rt.String()),
		)
	}

	return nil
}
