package window

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

var due = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func at(hh, mm int) time.Time {
	return time.Date(2024, 1, 10, hh, mm, 0, 0, time.UTC)
}

func typesEqual(a, b []domain.ReminderType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWindow_Contains(t *testing.T) {
	tests := []struct {
		name string
		rt   domain.ReminderType
		now  time.Time
		want bool
	}{
		{name: "1d_before start inclusive", rt: domain.ReminderOneDayBefore, now: due.Add(-24 * time.Hour), want: true},
		{name: "1d_before before start", rt: domain.ReminderOneDayBefore, now: due.Add(-24*time.Hour - time.Second), want: false},
		{name: "1h_before end exclusive", rt: domain.ReminderOneHourBefore, now: due, want: false},
		{name: "1h_before inside", rt: domain.ReminderOneHourBefore, now: at(13, 30), want: true},
		{name: "30m_before outside", rt: domain.ReminderThirtyMinBefore, now: at(13, 29), want: false},
		{name: "15m_before inside", rt: domain.ReminderFifteenMinBefore, now: at(13, 45), want: true},
		{name: "at_due_time start", rt: domain.ReminderAtDueTime, now: at(13, 55), want: true},
		{name: "at_due_time end inclusive", rt: domain.ReminderAtDueTime, now: at(14, 5), want: true},
		{name: "at_due_time after end", rt: domain.ReminderAtDueTime, now: at(14, 5).Add(time.Second), want: false},
		{name: "1h_after start", rt: domain.ReminderOneHourAfter, now: at(15, 0), want: true},
		{name: "1h_after before start", rt: domain.ReminderOneHourAfter, now: at(14, 59), want: false},
		{name: "1d_after far future", rt: domain.ReminderOneDayAfter, now: due.Add(30 * 24 * time.Hour), want: true},
		{name: "unknown type", rt: domain.ReminderType("2h_before"), now: at(13, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := For(tt.rt, due).Contains(tt.now); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestEvaluator_EndToEndScenario(t *testing.T) {
	evaluator := NewEvaluator(NewOccurrenceSuppressor(), time.Minute)
	prefs := []domain.ReminderType{domain.ReminderOneHourBefore, domain.ReminderAtDueTime}

	got := evaluator.Due(at(13, 30), due, prefs, nil)
	if !typesEqual(got, []domain.ReminderType{domain.ReminderOneHourBefore}) {
		t.Errorf("at 13:30 got %v, want [1h_before]", got)
	}

	last := map[domain.ReminderType]time.Time{domain.ReminderOneHourBefore: at(13, 30)}
	got = evaluator.Due(at(14, 2), due, prefs, last)
	if !typesEqual(got, []domain.ReminderType{domain.ReminderAtDueTime}) {
		t.Errorf("at 14:02 got %v, want [at_due_time]", got)
	}
}

func TestEvaluator_IdempotentAtSameInstant(t *testing.T) {
	for _, suppressor := range []Suppressor{NewCooldownSuppressor(), NewOccurrenceSuppressor()} {
		t.Run(suppressor.Name(), func(t *testing.T) {
			evaluator := NewEvaluator(suppressor, time.Minute)
			now := at(14, 0)

			for _, rt := range domain.AllReminderTypes() {
				due := now
				switch {
				case rt == domain.ReminderOneHourAfter:
					due = now.Add(-time.Hour)
				case rt == domain.ReminderOneDayAfter:
					due = now.Add(-24 * time.Hour)
				case rt != domain.ReminderAtDueTime:
					due = now.Add(time.Minute)
				}

				prefs := []domain.ReminderType{rt}
				if got := evaluator.Due(now, due, prefs, nil); len(got) != 1 {
					t.Fatalf("%s: expected to fire on first evaluation, got %v", rt, got)
				}

				last := map[domain.ReminderType]time.Time{rt: now}
				if got := evaluator.Due(now, due, prefs, last); len(got) != 0 {
					t.Errorf("%s: expected not due with last_notified == now, got %v", rt, got)
				}
			}
		})
	}
}

func TestEvaluator_ConcurrentTypesFireTogether(t *testing.T) {
	evaluator := NewEvaluator(NewOccurrenceSuppressor(), time.Minute)
	prefs := []domain.ReminderType{
		domain.ReminderAtDueTime,
		domain.ReminderOneHourBefore,
		domain.ReminderFifteenMinBefore,
	}

	got := evaluator.Due(at(13, 57), due, prefs, nil)
	want := []domain.ReminderType{
		domain.ReminderOneHourBefore,
		domain.ReminderFifteenMinBefore,
		domain.ReminderAtDueTime,
	}
	if !typesEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluator_CooldownVersusOccurrence(t *testing.T) {
	prefs := []domain.ReminderType{domain.ReminderOneHourAfter}
	last := map[domain.ReminderType]time.Time{domain.ReminderOneHourAfter: at(15, 0)}
	now := at(15, 10)

	cooldown := NewEvaluator(NewCooldownSuppressor(), time.Minute)
	if got := cooldown.Due(now, due, prefs, last); len(got) != 1 {
		t.Errorf("cooldown policy: expected re-fire after cooldown elapsed, got %v", got)
	}

	occurrence := NewEvaluator(NewOccurrenceSuppressor(), time.Minute)
	decisions := occurrence.Evaluate(now, due, prefs, last)
	if len(decisions) != 1 || decisions[0].Fire {
		t.Fatalf("occurrence policy: expected suppression, got %+v", decisions)
	}
	if decisions[0].Reason != ReasonAlreadySent {
		t.Errorf("got reason %q, want %q", decisions[0].Reason, ReasonAlreadySent)
	}
}

func TestEvaluator_OccurrenceAllowsNewDueInstant(t *testing.T) {
	evaluator := NewEvaluator(NewOccurrenceSuppressor(), time.Minute)
	prefs := []domain.ReminderType{domain.ReminderOneHourBefore}

	// sent for yesterday's due instant; task rescheduled to today
	last := map[domain.ReminderType]time.Time{domain.ReminderOneHourBefore: at(13, 30).Add(-24 * time.Hour)}

	if got := evaluator.Due(at(13, 30), due, prefs, last); len(got) != 1 {
		t.Errorf("expected fire for new occurrence, got %v", got)
	}
}

func TestEvaluator_CooldownDerivedFromPollInterval(t *testing.T) {
	tests := []struct {
		name string
		poll time.Duration
		rt   domain.ReminderType
		want time.Duration
	}{
		{name: "minute type default poll", poll: time.Minute, rt: domain.ReminderAtDueTime, want: time.Minute},
		{name: "day type default poll", poll: time.Minute, rt: domain.ReminderOneDayBefore, want: time.Hour},
		{name: "minute type slow poll", poll: 5 * time.Minute, rt: domain.ReminderFifteenMinBefore, want: 5 * time.Minute},
		{name: "day type very slow poll", poll: 2 * time.Hour, rt: domain.ReminderOneDayAfter, want: 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := NewEvaluator(nil, tt.poll)
			if got := evaluator.Cooldown(tt.rt); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluator_CooldownSuppressesWithinInterval(t *testing.T) {
	evaluator := NewEvaluator(NewCooldownSuppressor(), time.Minute)
	prefs := []domain.ReminderType{domain.ReminderOneDayBefore}
	last := map[domain.ReminderType]time.Time{domain.ReminderOneDayBefore: at(12, 45)}

	decisions := evaluator.Evaluate(at(13, 30), due, prefs, last)
	if len(decisions) != 1 || decisions[0].Fire || decisions[0].Reason != ReasonCooldown {
		t.Errorf("expected cooldown suppression, got %+v", decisions)
	}

	if got := evaluator.Due(at(13, 45), due, prefs, last); len(got) != 1 {
		t.Errorf("expected fire once hour elapsed, got %v", got)
	}
}

func TestEvaluator_NoPreferences(t *testing.T) {
	evaluator := NewEvaluator(nil, time.Minute)
	if got := evaluator.Evaluate(at(14, 0), due, nil, nil); got != nil {
		t.Errorf("expected nil decisions, got %v", got)
	}
}

func TestEvaluator_OutsideWindowReason(t *testing.T) {
	evaluator := NewEvaluator(nil, time.Minute)
	decisions := evaluator.Evaluate(at(10, 0), due, []domain.ReminderType{domain.ReminderAtDueTime}, nil)

	if len(decisions) != 1 {
		t.Fatalf("got %d decisions, want 1", len(decisions))
	}
	if decisions[0].Fire || decisions[0].Reason != ReasonOutsideWindow {
		t.Errorf("unexpected decision %+v", decisions[0])
	}
	if !decisions[0].Window.Start.Equal(at(13, 55)) || !decisions[0].Window.End.Equal(at(14, 5)) {
		t.Errorf("unexpected window %+v", decisions[0].Window)
	}
}

func TestNewSuppressor(t *testing.T) {
	if got := NewSuppressor("cooldown").Name(); got != "cooldown" {
		t.Errorf("got %q, want cooldown", got)
	}
	if got := NewSuppressor("").Name(); got != "occurrence" {
		t.Errorf("got %q, want occurrence", got)
	}
}
