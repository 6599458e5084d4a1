package notify

import (
	"fmt"
	"html"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const dueLayout = "Mon Jan 2 2006 15:04 MST"

var phrases = map[domain.ReminderType]string{
	domain.ReminderOneDayBefore:     "is due in 1 day",
	domain.ReminderOneHourBefore:    "is due in 1 hour",
	domain.ReminderThirtyMinBefore:  "is due in 30 minutes",
	domain.ReminderFifteenMinBefore: "is due in 15 minutes",
	domain.ReminderAtDueTime:        "is due now",
	domain.ReminderOneHourAfter:     "is 1 hour overdue",
	domain.ReminderOneDayAfter:      "is 1 day overdue",
}

func Phrase(rt domain.ReminderType) string {
	if p, ok := phrases[rt]; ok {
		return p
	}
	return "needs attention"
}

// FormatMessage renders an HTML message for the Telegram parse mode.
func FormatMessage(task *domain.PersonalTask, rt domain.ReminderType, due time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	icon := "⏰"
	if rt.IsAfterDue() {
		icon = "⚠️"
	}

	title := task.Title
	if title == "" {
		title = "Untitled task"
	}

	return fmt.Sprintf("%s <b>%s</b> %s\nDue: %s",
		icon,
		html.EscapeString(title),
		Phrase(rt),
		due.In(loc).Format(dueLayout),
	)
}
