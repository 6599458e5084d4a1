package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=run_repository.go -destination=run_repository_mock.go -package=domain

type RunLock interface {
	Acquire(ctx context.Context, runID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, runID string) error
}

type RunHistory interface {
	SaveLastRun(ctx context.Context, record *RunRecord) error
	GetLastRun(ctx context.Context) (*RunRecord, error)
}
