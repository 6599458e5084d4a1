package notify

import (
	"context"
	"errors"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=notify

var ErrDeliveryFailed = errors.New("notification delivery failed")

type Dispatcher interface {
	Send(ctx context.Context, settings *domain.TelegramSettings, text string) error
}
