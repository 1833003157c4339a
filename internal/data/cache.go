package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	trendingDailyKey = "trending:daily"
)

func metadataKey(id string) string { return "content:metadata:" + id }
func viewsKey(id string) string    { return "content:views:" + id }

type cacheRepo struct {
	data *Data
	log  *log.Helper
}

// NewCacheRepo creates a new redis-backed cache repository
func NewCacheRepo(data *Data, logger log.Logger) biz.CacheRepo {
	return &cacheRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/cache")),
	}
}

func (r *cacheRepo) GetMetadata(ctx context.Context, id string) (*biz.ContentMetadata, bool, error) {
	cached, err := r.data.rdb.Get(ctx, metadataKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("redis", "get_metadata").Inc()
		return nil, false, fmt.Errorf("failed to read cached metadata: %w", err)
	}

	var m biz.ContentMetadata
	if err := json.Unmarshal(cached, &m); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached metadata: %w", err)
	}
	return &m, true, nil
}

func (r *cacheRepo) SetMetadata(ctx context.Context, m *biz.ContentMetadata, ttl time.Duration) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := r.data.rdb.Set(ctx, metadataKey(m.ContentID), payload, ttl).Err(); err != nil {
		metrics.StoreErrors.WithLabelValues("redis", "set_metadata").Inc()
		return fmt.Errorf("failed to cache metadata: %w", err)
	}
	return nil
}

// IncrViews atomically bumps the view counter. The daily trending set is fed
// separately and is not touched here.
func (r *cacheRepo) IncrViews(ctx context.Context, id string) (int64, error) {
	views, err := r.data.rdb.Incr(ctx, viewsKey(id)).Result()
	if err != nil {
		metrics.StoreErrors.WithLabelValues("redis", "incr_views").Inc()
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}

func (r *cacheRepo) GetViews(ctx context.Context, id string) (int64, error) {
	views, err := r.data.rdb.Get(ctx, viewsKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("redis", "get_views").Inc()
		return 0, fmt.Errorf("failed to read views: %w", err)
	}
	return views, nil
}

// Trending reads ranks 0..limit-1 of the daily set, highest score first.
// Equal scores keep the store's native ordering.
func (r *cacheRepo) Trending(ctx context.Context, limit int64) ([]*biz.TrendingEntry, error) {
	zs, err := r.data.rdb.ZRevRangeWithScores(ctx, trendingDailyKey, 0, limit-1).Result()
	if err != nil {
		metrics.StoreErrors.WithLabelValues("redis", "trending").Inc()
		return nil, fmt.Errorf("failed to read trending: %w", err)
	}

	entries := make([]*biz.TrendingEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			member = fmt.Sprint(z.Member)
		}
		entries = append(entries, &biz.TrendingEntry{
			ContentID: member,
			Views:     int64(z.Score),
		})
	}
	return entries, nil
}
