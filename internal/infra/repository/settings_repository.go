package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) domain.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetTelegramSettings returns the most recently updated active row.
func (r *settingsRepository) GetTelegramSettings(ctx context.Context) (*domain.TelegramSettings, error) {
	var m TelegramSettingsModel

	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettingsNotFound
		}

		slog.ErrorContext(ctx, "failed to fetch telegram settings",
			slog.String("event", "db.settings.fetch.fail"),
			slog.String("error", result.Error.Error()),
		)
		return nil, result.Error
	}

	return m.ToEntity(), nil
}
