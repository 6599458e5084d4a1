package window

import (
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const atDueTimeSlack = 5 * time.Minute

// Window is the span of instants in which a reminder type may fire.
// Start is always inclusive.
type Window struct {
	Start        time.Time
	End          time.Time
	EndInclusive bool
	Unbounded    bool
}

// For returns the window of rt relative to the due instant.
func For(rt domain.ReminderType, due time.Time) Window {
	switch rt {
	case domain.ReminderOneDayBefore:
		return Window{Start: due.Add(-24 * time.Hour), End: due}
	case domain.ReminderOneHourBefore:
		return Window{Start: due.Add(-time.Hour), End: due}
	case domain.ReminderThirtyMinBefore:
		return Window{Start: due.Add(-30 * time.Minute), End: due}
	case domain.ReminderFifteenMinBefore:
		return Window{Start: due.Add(-15 * time.Minute), End: due}
	case domain.ReminderAtDueTime:
		return Window{Start: due.Add(-atDueTimeSlack), End: due.Add(atDueTimeSlack), EndInclusive: true}
	case domain.ReminderOneHourAfter:
		return Window{Start: due.Add(time.Hour), Unbounded: true}
	case domain.ReminderOneDayAfter:
		return Window{Start: due.Add(24 * time.Hour), Unbounded: true}
	default:
		return Window{}
	}
}

func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero() && !w.Unbounded
}

func (w Window) Contains(t time.Time) bool {
	if w.IsZero() || t.Before(w.Start) {
		return false
	}
	if w.Unbounded {
		return true
	}
	if w.EndInclusive {
		return !t.After(w.End)
	}
	return t.Before(w.End)
}
