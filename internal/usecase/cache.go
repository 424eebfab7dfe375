package usecase

import (
	"context"
	"time"
)

// Cache is the JSON cache the usecases read through. Implementations bypass
// silently when the backend is down: misses are reported as (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
