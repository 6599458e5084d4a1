package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

func TestPersonalTaskModel_ToEntity(t *testing.T) {
	dueTime := "09:30:00"
	at := time.Date(2024, 1, 9, 9, 30, 0, 0, time.UTC)

	m := &PersonalTaskModel{
		ID:                     "task-1",
		Title:                  "Call client",
		DueDate:                time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DueTime:                &dueTime,
		ReminderPreferences:    pq.StringArray{"1d_before", "sometime", "1d_before"},
		LastNotified1dBeforeAt: &at,
	}

	task, unknown, err := m.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.DueTime == nil || *task.DueTime != (domain.ClockTime{Hour: 9, Minute: 30}) {
		t.Errorf("unexpected due time: %v", task.DueTime)
	}
	if len(task.ReminderPreferences) != 1 || task.ReminderPreferences[0] != domain.ReminderOneDayBefore {
		t.Errorf("unexpected preferences: %v", task.ReminderPreferences)
	}
	if len(unknown) != 1 || unknown[0] != "sometime" {
		t.Errorf("unexpected unknown tokens: %v", unknown)
	}
	if got := task.LastNotifiedAt(domain.ReminderOneDayBefore); got == nil || !got.Equal(at) {
		t.Errorf("unexpected last notified: %v", got)
	}
	if got := task.LastNotifiedAt(domain.ReminderAtDueTime); got != nil {
		t.Errorf("expected nil marker, got %v", got)
	}
}

func TestPersonalTaskModel_ToEntityInvalidDueTime(t *testing.T) {
	bad := "lunchtime"
	m := &PersonalTaskModel{ID: "task-2", DueTime: &bad}

	_, _, err := m.ToEntity()
	if !errors.Is(err, ErrInvalidTaskData) || !errors.Is(err, domain.ErrInvalidDueTime) {
		t.Errorf("expected ErrInvalidTaskData wrapping ErrInvalidDueTime, got %v", err)
	}
}

func TestFromEntity_RoundTripsMarkers(t *testing.T) {
	at := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	task := &domain.PersonalTask{
		ID:                  "task-3",
		DueDate:             time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DueTime:             &domain.ClockTime{Hour: 14, Minute: 5},
		ReminderPreferences: []domain.ReminderType{domain.ReminderOneHourAfter},
		LastNotified:        map[domain.ReminderType]time.Time{domain.ReminderOneHourAfter: at},
	}

	m := FromEntity(task)
	if m.DueTime == nil || *m.DueTime != "14:05" {
		t.Errorf("unexpected due time column: %v", m.DueTime)
	}
	if m.LastNotified1hAfterAt == nil || !m.LastNotified1hAfterAt.Equal(at) {
		t.Errorf("unexpected 1h_after marker: %v", m.LastNotified1hAfterAt)
	}
	if len(m.ReminderPreferences) != 1 || m.ReminderPreferences[0] != "1h_after" {
		t.Errorf("unexpected preferences column: %v", m.ReminderPreferences)
	}
}

func TestMarkColumn(t *testing.T) {
	col, err := markColumn(domain.ReminderFifteenMinBefore)
	if err != nil || col != "last_notified_15m_before_at" {
		t.Errorf("got %q, %v", col, err)
	}

	if _, err := markColumn("x; DROP TABLE personal_tasks"); !errors.Is(err, ErrInvalidReminderType) {
		t.Errorf("expected ErrInvalidReminderType, got %v", err)
	}
}
