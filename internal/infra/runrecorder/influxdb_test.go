//go:build !gcloud

package runrecorder

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

func TestToPoint(t *testing.T) {
	at := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	p := toPoint(domain.RunResultRecord{
		RunAt:        at,
		Strategy:     "claim",
		ReminderType: domain.ReminderOneHourBefore,
		SentCount:    2,
		FailedCount:  1,
	})

	if p.Name() != influxMeasurement {
		t.Errorf("unexpected measurement: %s", p.Name())
	}
	if !p.Time().Equal(at) {
		t.Errorf("unexpected time: %v", p.Time())
	}

	tags := make(map[string]string)
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["run_id"] != "default" {
		t.Errorf("expected default run_id tag, got %q", tags["run_id"])
	}
	if tags["reminder_type"] != "1h_before" {
		t.Errorf("unexpected reminder_type tag: %q", tags["reminder_type"])
	}

	fields := make(map[string]any)
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	if fields["sent_count"] != int64(2) {
		t.Errorf("unexpected sent_count: %v (%T)", fields["sent_count"], fields["sent_count"])
	}
}
