package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time-of-day without date or zone.
type ClockTime struct {
	Hour   int
	Minute int
}

var clockLayouts = []string{"15:04", "15:04:05", "15:04:05.999999"}

func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidDueTime, s)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
