package repository

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

// PersonalTaskModel maps the columns of personal_tasks the reminder job reads
// and stamps. The table itself is owned by the surrounding application.
type PersonalTaskModel struct {
	ID                  string         `gorm:"column:id;type:uuid;primaryKey"`
	Title               string         `gorm:"column:title;type:text;not null"`
	DueDate             time.Time      `gorm:"column:due_date;type:date;not null"`
	DueTime             *string        `gorm:"column:due_time;type:time"`
	IsCompleted         bool           `gorm:"column:is_completed;type:boolean;not null;default:false;index:idx_personal_tasks_is_completed"`
	ReminderPreferences pq.StringArray `gorm:"column:reminder_preferences;type:text[]"`

	LastNotified1dBeforeAt  *time.Time `gorm:"column:last_notified_1d_before_at;type:timestamptz"`
	LastNotified1hBeforeAt  *time.Time `gorm:"column:last_notified_1h_before_at;type:timestamptz"`
	LastNotified30mBeforeAt *time.Time `gorm:"column:last_notified_30m_before_at;type:timestamptz"`
	LastNotified15mBeforeAt *time.Time `gorm:"column:last_notified_15m_before_at;type:timestamptz"`
	LastNotifiedAtDueTimeAt *time.Time `gorm:"column:last_notified_at_due_time_at;type:timestamptz"`
	LastNotified1hAfterAt   *time.Time `gorm:"column:last_notified_1h_after_at;type:timestamptz"`
	LastNotified1dAfterAt   *time.Time `gorm:"column:last_notified_1d_after_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (PersonalTaskModel) TableName() string {
	return "personal_tasks"
}

func (m *PersonalTaskModel) markFields() map[domain.ReminderType]**time.Time {
	return map[domain.ReminderType]**time.Time{
		domain.ReminderOneDayBefore:     &m.LastNotified1dBeforeAt,
		domain.ReminderOneHourBefore:    &m.LastNotified1hBeforeAt,
		domain.ReminderThirtyMinBefore:  &m.LastNotified30mBeforeAt,
		domain.ReminderFifteenMinBefore: &m.LastNotified15mBeforeAt,
		domain.ReminderAtDueTime:        &m.LastNotifiedAtDueTimeAt,
		domain.ReminderOneHourAfter:     &m.LastNotified1hAfterAt,
		domain.ReminderOneDayAfter:      &m.LastNotified1dAfterAt,
	}
}

// ToEntity returns the unknown preference tokens alongside the entity so the
// caller can log them.
func (m *PersonalTaskModel) ToEntity() (*domain.PersonalTask, []string, error) {
	var dueTime *domain.ClockTime
	if m.DueTime != nil && *m.DueTime != "" {
		parsed, err := domain.ParseClockTime(*m.DueTime)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: task %s: %w", ErrInvalidTaskData, m.ID, err)
		}
		dueTime = &parsed
	}

	prefs, unknown := domain.ParseReminderPreferences(m.ReminderPreferences)

	lastNotified := make(map[domain.ReminderType]time.Time)
	for rt, field := range m.markFields() {
		if *field != nil {
			lastNotified[rt] = (*field).UTC()
		}
	}

	return &domain.PersonalTask{
		ID:                  m.ID,
		Title:               m.Title,
		DueDate:             m.DueDate,
		DueTime:             dueTime,
		IsCompleted:         m.IsCompleted,
		ReminderPreferences: prefs,
		LastNotified:        lastNotified,
	}, unknown, nil
}

func FromEntity(e *domain.PersonalTask) *PersonalTaskModel {
	m := &PersonalTaskModel{
		ID:          e.ID,
		Title:       e.Title,
		DueDate:     e.DueDate,
		IsCompleted: e.IsCompleted,
	}

	if e.DueTime != nil {
		s := e.DueTime.String()
		m.DueTime = &s
	}

	prefs := make(pq.StringArray, 0, len(e.ReminderPreferences))
	for _, p := range e.ReminderPreferences {
		prefs = append(prefs, p.String())
	}
	m.ReminderPreferences = prefs

	fields := m.markFields()
	for rt, at := range e.LastNotified {
		if field, ok := fields[rt]; ok {
			t := at
			*field = &t
		}
	}

	return m
}

// markColumn validates rt before its column name is used in SQL.
func markColumn(rt domain.ReminderType) (string, error) {
	if _, err := domain.ParseReminderType(string(rt)); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidReminderType, rt)
	}
	return rt.MarkColumn(), nil
}
