package delivery

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

func (o Outcome) String() string {
	return string(o)
}

// Request is one reminder ready to go out.
type Request struct {
	TaskID   string
	Type     domain.ReminderType
	Now      time.Time
	Cooldown time.Duration
	// Previous is the marker value the evaluator saw.
	Previous *time.Time
	Settings *domain.TelegramSettings
	Text     string
}

// Strategy decides how sending and marker persistence are ordered.
type Strategy interface {
	Name() string
	// Begin starts the per-run state. Sessions are not shared between runs.
	Begin() Session
}

type Session interface {
	Deliver(ctx context.Context, req Request) (Outcome, error)
	// Flush persists anything the session deferred.
	Flush(ctx context.Context) error
}
