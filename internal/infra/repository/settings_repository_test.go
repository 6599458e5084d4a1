package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/repository"
)

func TestGetTelegramSettings(t *testing.T) {
	tdb := setupTaskDB(t)
	defer tdb.TeardownTestDB(t)

	repo := repository.NewSettingsRepository(tdb.DB)
	ctx := context.Background()

	tdb.CleanTables(t)

	_, err := repo.GetTelegramSettings(ctx)
	assert.ErrorIs(t, err, domain.ErrSettingsNotFound)

	older := time.Now().Add(-time.Hour).UTC()
	newer := time.Now().UTC()

	require.NoError(t, tdb.DB.Create(&repository.TelegramSettingsModel{
		ID: uuid.NewString(), BotToken: "old-token", ChatID: "1", IsActive: true,
		CreatedAt: older, UpdatedAt: older,
	}).Error)
	require.NoError(t, tdb.DB.Create(&repository.TelegramSettingsModel{
		ID: uuid.NewString(), BotToken: "new-token", ChatID: "2", IsActive: true,
		CreatedAt: newer, UpdatedAt: newer,
	}).Error)

	settings, err := repo.GetTelegramSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", settings.BotToken)
	assert.Equal(t, "2", settings.ChatID)
	assert.True(t, settings.IsConfigured())
}
