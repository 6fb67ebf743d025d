package usecase

import (
	"context"
	"time"
)

// Cache is the subset of the redis wrapper the usecases depend on. A nil
// Cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
