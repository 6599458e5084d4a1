package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/testutil"
)

func TestRunLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := repository.NewRunRepository(client, "test")

	ok, err := repo.Acquire(ctx, "run-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Acquire(ctx, "run-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "lock should be held by run-1")

	// releasing with the wrong owner leaves the lock in place
	require.NoError(t, repo.Release(ctx, "run-2"))
	ok, err = repo.Acquire(ctx, "run-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Release(ctx, "run-1"))
	ok, err = repo.Acquire(ctx, "run-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := repository.NewRunRepository(client, "test")

	_, err := repo.GetLastRun(ctx)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	started := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	record := &domain.RunRecord{
		RunID:             "run-1",
		StartedAt:         started,
		FinishedAt:        started.Add(2 * time.Second),
		Strategy:          "claim",
		ProcessedCount:    3,
		NotificationCount: 2,
		ByType: map[domain.ReminderType]domain.TypeOutcome{
			domain.ReminderAtDueTime: {Sent: 2},
		},
	}
	require.NoError(t, repo.SaveLastRun(ctx, record))

	got, err := repo.GetLastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 2, got.NotificationCount)
	assert.Equal(t, 2, got.ByType[domain.ReminderAtDueTime].Sent)
	assert.Equal(t, 2*time.Second, got.Duration())

	assert.ErrorIs(t, repo.SaveLastRun(ctx, nil), repository.ErrInvalidRunData)
}
