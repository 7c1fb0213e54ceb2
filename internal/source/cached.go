package source

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"user-directory/internal/cache"
	"user-directory/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DefaultCacheKey 快取遠端資料的 key
const DefaultCacheKey = "directory:users"

// CachedSource 讀取快取：命中時不呼叫 next，未命中時呼叫 next 並寫回。
// 快取錯誤只記 log，不影響讀取結果。
type CachedSource struct {
	next  Source
	cache cache.Cache
	key   string
	ttl   time.Duration
}

func NewCachedSource(next Source, c cache.Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{next: next, cache: c, key: DefaultCacheKey, ttl: ttl}
}

func (s *CachedSource) Fetch(ctx context.Context) ([]model.User, error) {
	raw, err := s.cache.Get(ctx, s.key).Result()
	switch {
	case err == nil:
		var users []model.User
		jsonErr := json.Unmarshal([]byte(raw), &users)
		if jsonErr == nil {
			log.Debug().Str("key", s.key).Int("count", len(users)).Msg("users served from cache")
			return users, nil
		}
		log.Warn().Err(jsonErr).Str("key", s.key).Msg("discarding corrupt cache entry")
	case errors.Is(err, redis.Nil):
	default:
		log.Warn().Err(err).Str("key", s.key).Msg("cache read failed")
	}

	users, err := s.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(users)
	if err != nil {
		log.Warn().Err(err).Msg("encode users for cache")
		return users, nil
	}
	if err := s.cache.Set(ctx, s.key, payload, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("cache write failed")
	}
	return users, nil
}
