package domain

import "time"

// NotificationMark is a last_notified_<type>_at value to persist.
type NotificationMark struct {
	TaskID string
	Type   ReminderType
	At     time.Time
}

func NewNotificationMark(taskID string, rt ReminderType, at time.Time) NotificationMark {
	return NotificationMark{
		TaskID: taskID,
		Type:   rt,
		At:     at.UTC(),
	}
}
