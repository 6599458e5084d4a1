package domain

import (
	"fmt"
	"time"
)

// ReminderType is a named offset from a task's due instant at which a
// notification may be sent.
type ReminderType string

const (
	ReminderOneDayBefore     ReminderType = "1d_before"
	ReminderOneHourBefore    ReminderType = "1h_before"
	ReminderThirtyMinBefore  ReminderType = "30m_before"
	ReminderFifteenMinBefore ReminderType = "15m_before"
	ReminderAtDueTime        ReminderType = "at_due_time"
	ReminderOneHourAfter     ReminderType = "1h_after"
	ReminderOneDayAfter      ReminderType = "1d_after"
)

var reminderTypes = []ReminderType{
	ReminderOneDayBefore,
	ReminderOneHourBefore,
	ReminderThirtyMinBefore,
	ReminderFifteenMinBefore,
	ReminderAtDueTime,
	ReminderOneHourAfter,
	ReminderOneDayAfter,
}

// AllReminderTypes returns the fixed vocabulary in evaluation order.
func AllReminderTypes() []ReminderType {
	out := make([]ReminderType, len(reminderTypes))
	copy(out, reminderTypes)
	return out
}

func ParseReminderType(s string) (ReminderType, error) {
	for _, t := range reminderTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidReminderType, s)
}

// ParseReminderPreferences keeps known tokens in their original order and
// drops duplicates. Unknown tokens are returned separately so callers can log
// them without failing the task.
func ParseReminderPreferences(tokens []string) ([]ReminderType, []string) {
	seen := make(map[ReminderType]struct{}, len(tokens))
	prefs := make([]ReminderType, 0, len(tokens))
	var unknown []string

	for _, token := range tokens {
		t, err := ParseReminderType(token)
		if err != nil {
			unknown = append(unknown, token)
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		prefs = append(prefs, t)
	}

	return prefs, unknown
}

func (t ReminderType) String() string {
	return string(t)
}

func (t ReminderType) IsAfterDue() bool {
	return t == ReminderOneHourAfter || t == ReminderOneDayAfter
}

// Granularity is the natural resolution of the reminder's offset. Day-level
// reminders are suppressed for at least an hour, everything else for at
// least a minute.
func (t ReminderType) Granularity() time.Duration {
	switch t {
	case ReminderOneDayBefore, ReminderOneDayAfter:
		return time.Hour
	default:
		return time.Minute
	}
}

// MarkColumn is the persisted column holding the last notification time.
func (t ReminderType) MarkColumn() string {
	return "last_notified_" + string(t) + "_at"
}
