package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reportadapters "dividend_backend/internal/feature/report/adapters"
	"dividend_backend/internal/platform/cache"
	infraredis "dividend_backend/internal/platform/redis"
)

// NewAggregateStore creates the report aggregate store. When rdb is non-nil
// query results are cached in Redis; otherwise every call reaches the database.
func NewAggregateStore(db *gorm.DB, rdb *redis.Client) *cache.CachingAggregateStore {
	cfg := infraredis.LoadConfig()
	return cache.NewCachingAggregateStore(rdb, cfg.CacheTTL, reportadapters.NewAggregateStore(db), "reports")
}
