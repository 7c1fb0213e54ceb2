package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 遠端資料快取介面，只用來暫存讀取到的原始資料，
// 本地的新增、修改、刪除永遠不會寫進快取。
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Close() error
}

// FakeCache 測試用，未設定的方法會 panic
type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn == nil {
		panic("FakeCache: Get not configured")
	}
	return f.GetFn(ctx, key)
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		panic("FakeCache: Set not configured")
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *FakeCache) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
