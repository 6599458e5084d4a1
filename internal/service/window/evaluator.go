package window

import (
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type Decision struct {
	Type         domain.ReminderType
	Window       Window
	Fire         bool
	Reason       Reason
	Cooldown     time.Duration
	LastNotified *time.Time
}

// Evaluator is a pure function of its inputs; it never reads the clock.
type Evaluator struct {
	suppressor   Suppressor
	pollInterval time.Duration
}

func NewEvaluator(suppressor Suppressor, pollInterval time.Duration) *Evaluator {
	if suppressor == nil {
		suppressor = NewOccurrenceSuppressor()
	}
	return &Evaluator{
		suppressor:   suppressor,
		pollInterval: pollInterval,
	}
}

func (e *Evaluator) PolicyName() string {
	return e.suppressor.Name()
}

// Cooldown is the poll interval rounded up to the reminder's granularity.
func (e *Evaluator) Cooldown(rt domain.ReminderType) time.Duration {
	return max(e.pollInterval, rt.Granularity())
}

// Evaluate returns one decision per preferred reminder type, in vocabulary
// order.
func (e *Evaluator) Evaluate(
	now, due time.Time,
	preferences []domain.ReminderType,
	lastNotified map[domain.ReminderType]time.Time,
) []Decision {
	if len(preferences) == 0 {
		return nil
	}

	wanted := make(map[domain.ReminderType]struct{}, len(preferences))
	for _, p := range preferences {
		wanted[p] = struct{}{}
	}

	decisions := make([]Decision, 0, len(wanted))
	for _, rt := range domain.AllReminderTypes() {
		if _, ok := wanted[rt]; !ok {
			continue
		}

		var last *time.Time
		if at, ok := lastNotified[rt]; ok {
			last = &at
		}

		decisions = append(decisions, e.decide(now, due, rt, last))
	}

	return decisions
}

func (e *Evaluator) decide(now, due time.Time, rt domain.ReminderType, last *time.Time) Decision {
	w := For(rt, due)
	d := Decision{
		Type:         rt,
		Window:       w,
		Cooldown:     e.Cooldown(rt),
		LastNotified: last,
	}

	if !w.Contains(now) {
		d.Reason = ReasonOutsideWindow
		return d
	}

	if suppressed, reason := e.suppressor.Suppress(now, w, last, d.Cooldown); suppressed {
		d.Reason = reason
		return d
	}

	d.Fire = true
	d.Reason = ReasonFire
	return d
}

// Due returns only the reminder types that fire at now.
func (e *Evaluator) Due(
	now, due time.Time,
	preferences []domain.ReminderType,
	lastNotified map[domain.ReminderType]time.Time,
) []domain.ReminderType {
	var out []domain.ReminderType
	for _, d := range e.Evaluate(now, due, preferences, lastNotified) {
		if d.Fire {
			out = append(out, d.Type)
		}
	}
	return out
}
