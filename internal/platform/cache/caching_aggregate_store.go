// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"dividend_backend/internal/feature/report/domain/entity"
	"dividend_backend/internal/feature/report/usecase"
)

const dateKey = "20060102"

// CachingAggregateStore decorates an AggregateStore with Redis caching.
// Every key is scoped to one user so a dividend write can drop just that user's entries.
type CachingAggregateStore struct {
	inner     usecase.AggregateStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.AggregateStore = (*CachingAggregateStore)(nil)

// NewCachingAggregateStore decorates an AggregateStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "reports".
// A nil rdb disables caching.
func NewCachingAggregateStore(rdb *redis.Client, ttl time.Duration, inner usecase.AggregateStore, namespace string) *CachingAggregateStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "reports"
	}
	return &CachingAggregateStore{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// SumByPeriod returns cached period totals, querying the inner store on a miss.
func (c *CachingAggregateStore) SumByPeriod(ctx context.Context, q usecase.PeriodQuery) ([]entity.PeriodTotal, error) {
	if c.rdb == nil {
		return c.inner.SumByPeriod(ctx, q)
	}
	key := c.userPrefix(q.UserID) + fmt.Sprintf("period:%s:%s:%s:%s",
		safe(q.Currency), q.Granularity, q.From.Format(dateKey), q.To.Format(dateKey))

	var out []entity.PeriodTotal
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.SumByPeriod(ctx, q)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// SumByCategory returns cached category totals, querying the inner store on a miss.
func (c *CachingAggregateStore) SumByCategory(ctx context.Context, q usecase.CategoryQuery) ([]entity.CategoryTotal, error) {
	if c.rdb == nil {
		return c.inner.SumByCategory(ctx, q)
	}
	key := c.userPrefix(q.UserID) + fmt.Sprintf("category:%s:%s:%s:%s",
		q.Dimension, orAll(safe(q.Currency)), bound(q.From), bound(q.To))

	var out []entity.CategoryTotal
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.SumByCategory(ctx, q)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

type earliest struct {
	At time.Time `json:"at"`
	OK bool      `json:"ok"`
}

// EarliestReceipt returns the cached first receipt date, querying the inner store on a miss.
func (c *CachingAggregateStore) EarliestReceipt(ctx context.Context, userID uint, currency string) (time.Time, bool, error) {
	if c.rdb == nil {
		return c.inner.EarliestReceipt(ctx, userID, currency)
	}
	key := c.userPrefix(userID) + "earliest:" + orAll(safe(currency))

	var e earliest
	if c.get(ctx, key, &e) {
		return e.At, e.OK, nil
	}
	at, ok, err := c.inner.EarliestReceipt(ctx, userID, currency)
	if err != nil {
		return time.Time{}, false, err
	}
	c.set(ctx, key, earliest{At: at, OK: ok})
	return at, ok, nil
}

// InvalidateUser drops every cached aggregate of userID.
func (c *CachingAggregateStore) InvalidateUser(ctx context.Context, userID uint) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.userPrefix(userID)+"*")
}

// get loads key into dst. A corrupted entry is deleted and reported as a miss.
func (c *CachingAggregateStore) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key. Failures are ignored; the next read goes to the database.
func (c *CachingAggregateStore) set(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// userPrefix is the key prefix shared by all entries of userID.
func (c *CachingAggregateStore) userPrefix(userID uint) string {
	return fmt.Sprintf("%s:u%d:", c.namespace, userID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingAggregateStore) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

func bound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateKey)
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
