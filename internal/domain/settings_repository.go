package domain

import "context"

//go:generate mockgen -source=settings_repository.go -destination=settings_repository_mock.go -package=domain

type SettingsRepository interface {
	// GetTelegramSettings returns ErrSettingsNotFound when no row exists.
	GetTelegramSettings(ctx context.Context) (*TelegramSettings, error)
}
