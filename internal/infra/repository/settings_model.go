package repository

import (
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type TelegramSettingsModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	BotToken  string    `gorm:"column:bot_token;type:text"`
	ChatID    string    `gorm:"column:chat_id;type:text"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (TelegramSettingsModel) TableName() string {
	return "telegram_settings"
}

func (m *TelegramSettingsModel) ToEntity() *domain.TelegramSettings {
	return &domain.TelegramSettings{
		BotToken: m.BotToken,
		ChatID:   m.ChatID,
	}
}
