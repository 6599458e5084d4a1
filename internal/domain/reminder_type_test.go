package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseReminderType(t *testing.T) {
	tests := []struct {
		input   string
		want    ReminderType
		wantErr bool
	}{
		{input: "1d_before", want: ReminderOneDayBefore},
		{input: "1h_before", want: ReminderOneHourBefore},
		{input: "30m_before", want: ReminderThirtyMinBefore},
		{input: "15m_before", want: ReminderFifteenMinBefore},
		{input: "at_due_time", want: ReminderAtDueTime},
		{input: "1h_after", want: ReminderOneHourAfter},
		{input: "1d_after", want: ReminderOneDayAfter},
		{input: "2h_before", wantErr: true},
		{input: "", wantErr: true},
		{input: "AT_DUE_TIME", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReminderType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidReminderType) {
					t.Errorf("expected ErrInvalidReminderType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseReminderPreferences(t *testing.T) {
	prefs, unknown := ParseReminderPreferences([]string{"1h_before", "bogus", "at_due_time", "1h_before", "3d_after"})

	want := []ReminderType{ReminderOneHourBefore, ReminderAtDueTime}
	if len(prefs) != len(want) {
		t.Fatalf("got %v, want %v", prefs, want)
	}
	for i := range want {
		if prefs[i] != want[i] {
			t.Errorf("prefs[%d]: got %q, want %q", i, prefs[i], want[i])
		}
	}

	if len(unknown) != 2 || unknown[0] != "bogus" || unknown[1] != "3d_after" {
		t.Errorf("unexpected unknown tokens: %v", unknown)
	}
}

func TestParseReminderPreferences_Empty(t *testing.T) {
	prefs, unknown := ParseReminderPreferences(nil)
	if len(prefs) != 0 || len(unknown) != 0 {
		t.Errorf("expected empty results, got %v %v", prefs, unknown)
	}
}

func TestReminderType_Granularity(t *testing.T) {
	for _, rt := range AllReminderTypes() {
		want := time.Minute
		if rt == ReminderOneDayBefore || rt == ReminderOneDayAfter {
			want = time.Hour
		}
		if got := rt.Granularity(); got != want {
			t.Errorf("%s: got %v, want %v", rt, got, want)
		}
	}
}

func TestReminderType_MarkColumn(t *testing.T) {
	if got := ReminderAtDueTime.MarkColumn(); got != "last_notified_at_due_time_at" {
		t.Errorf("got %q", got)
	}
	if got := ReminderOneDayBefore.MarkColumn(); got != "last_notified_1d_before_at" {
		t.Errorf("got %q", got)
	}
}

func TestAllReminderTypes_ReturnsCopy(t *testing.T) {
	types := AllReminderTypes()
	types[0] = "mutated"

	if AllReminderTypes()[0] != ReminderOneDayBefore {
		t.Error("AllReminderTypes exposed internal slice")
	}
}
