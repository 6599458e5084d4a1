package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	runLockKeySuffix = ":run:lock"
	lastRunKeySuffix = ":run:last"

	lastRunTTL = 7 * 24 * time.Hour
)

// releaseLockScript deletes the lock only when it is still held by the caller.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RunRepository struct {
	client    redis.UniversalClient
	keyPrefix string
}

var (
	_ domain.RunLock    = (*RunRepository)(nil)
	_ domain.RunHistory = (*RunRepository)(nil)
)

func NewRunRepository(client redis.UniversalClient, keyPrefix string) *RunRepository {
	return &RunRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RunRepository) lockKey() string {
	return r.keyPrefix + runLockKeySuffix
}

func (r *RunRepository) lastRunKey() string {
	return r.keyPrefix + lastRunKeySuffix
}

func (r *RunRepository) Acquire(ctx context.Context, runID string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, r.lockKey(), runID, ttl).Result()
}

func (r *RunRepository) Release(ctx context.Context, runID string) error {
	return releaseLockScript.Run(ctx, r.client, []string{r.lockKey()}, runID).Err()
}

func (r *RunRepository) SaveLastRun(ctx context.Context, record *domain.RunRecord) error {
	if record == nil {
		return ErrInvalidRunData
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidRunData
	}

	return r.client.Set(ctx, r.lastRunKey(), data, lastRunTTL).Err()
}

func (r *RunRepository) GetLastRun(ctx context.Context) (*domain.RunRecord, error) {
	data, err := r.client.Get(ctx, r.lastRunKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRunNotFound
		}
		return nil, err
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidRunData
	}

	return &record, nil
}
