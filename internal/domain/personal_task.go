package domain

import "time"

// PersonalTask is the subset of a personal task the reminder job reads.
// Its lifecycle is owned by the surrounding application.
type PersonalTask struct {
	ID                  string
	Title               string
	DueDate             time.Time // only year, month and day are meaningful
	DueTime             *ClockTime
	IsCompleted         bool
	ReminderPreferences []ReminderType
	LastNotified        map[ReminderType]time.Time
}

// DueInstant combines the due date and time in loc. Without a due time the
// task is due at the end of that day.
func (t *PersonalTask) DueInstant(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := t.DueDate.Date()
	if t.DueTime == nil {
		return time.Date(y, m, d, 23, 59, 59, 0, loc)
	}

	return time.Date(y, m, d, t.DueTime.Hour, t.DueTime.Minute, 0, 0, loc)
}

// LastNotifiedAt returns nil when the reminder type was never sent.
func (t *PersonalTask) LastNotifiedAt(rt ReminderType) *time.Time {
	if t.LastNotified == nil {
		return nil
	}
	at, ok := t.LastNotified[rt]
	if !ok {
		return nil
	}
	return &at
}
