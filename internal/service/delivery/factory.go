package delivery

import (
	"log/slog"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/notify"
)

func NewStrategy(
	kind config.DeliveryStrategy,
	tasks domain.PersonalTaskRepository,
	dispatcher notify.Dispatcher,
) Strategy {
	switch kind {
	case config.DeliveryStrategyBatch:
		slog.Info("using batch delivery strategy")
		return NewBatchStrategy(tasks, dispatcher)

	case config.DeliveryStrategyClaim:
		fallthrough
	default:
		slog.Info("using claim delivery strategy")
		return NewClaimStrategy(tasks, dispatcher)
	}
}
