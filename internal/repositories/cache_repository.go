package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface — кэш для тяжёлых агрегатов (сводки загрузки).
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
