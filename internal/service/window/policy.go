package window

import (
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
)

type Reason string

const (
	ReasonFire          Reason = "fire"
	ReasonOutsideWindow Reason = "outside_window"
	ReasonCooldown      Reason = "cooldown"
	ReasonAlreadySent   Reason = "already_sent"
)

// Suppressor decides whether a reminder inside its window must be held back
// because of an earlier notification.
type Suppressor interface {
	Suppress(now time.Time, w Window, lastNotified *time.Time, cooldown time.Duration) (bool, Reason)
	Name() string
}

var (
	_ Suppressor = (*CooldownSuppressor)(nil)
	_ Suppressor = (*OccurrenceSuppressor)(nil)
)

// CooldownSuppressor holds a reminder back only while the cooldown since the
// last notification is running. Open-ended windows keep firing once per
// cooldown.
type CooldownSuppressor struct{}

func NewCooldownSuppressor() *CooldownSuppressor {
	return &CooldownSuppressor{}
}

func (s *CooldownSuppressor) Name() string {
	return string(config.SuppressionCooldown)
}

func (s *CooldownSuppressor) Suppress(now time.Time, _ Window, lastNotified *time.Time, cooldown time.Duration) (bool, Reason) {
	if lastNotified == nil {
		return false, ""
	}
	if now.Sub(*lastNotified) < cooldown {
		return true, ReasonCooldown
	}
	return false, ""
}

// OccurrenceSuppressor applies the cooldown and additionally holds a reminder
// back once it was sent at or after the start of the current window.
type OccurrenceSuppressor struct {
	cooldown *CooldownSuppressor
}

func NewOccurrenceSuppressor() *OccurrenceSuppressor {
	return &OccurrenceSuppressor{cooldown: NewCooldownSuppressor()}
}

func (s *OccurrenceSuppressor) Name() string {
	return string(config.SuppressionOccurrence)
}

func (s *OccurrenceSuppressor) Suppress(now time.Time, w Window, lastNotified *time.Time, cooldown time.Duration) (bool, Reason) {
	if suppressed, reason := s.cooldown.Suppress(now, w, lastNotified, cooldown); suppressed {
		return true, reason
	}
	if lastNotified == nil {
		return false, ""
	}
	if !lastNotified.Before(w.Start) && !lastNotified.After(now) {
		return true, ReasonAlreadySent
	}
	return false, ""
}

func NewSuppressor(policy config.SuppressionPolicy) Suppressor {
	switch policy {
	case config.SuppressionCooldown:
		slog.Info("using cooldown suppression policy")
		return NewCooldownSuppressor()

	case config.SuppressionOccurrence:
		fallthrough
	default:
		slog.Info("using occurrence suppression policy")
		return NewOccurrenceSuppressor()
	}
}
