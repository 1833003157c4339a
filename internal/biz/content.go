package biz

import (
	"context"
	"fmt"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

// DefaultMetadataTTL is how long a cached metadata copy is served without revalidation.
const DefaultMetadataTTL = time.Hour

// ContentUseCase aggregates catalog reads across the relational, document and cache stores.
type ContentUseCase struct {
	contents ContentRepo
	reviews  ReviewRepo
	cache    CacheRepo
	ttl      time.Duration
	log      *log.Helper
}

// NewContentUseCase creates a new ContentUseCase instance
func NewContentUseCase(contents ContentRepo, reviews ReviewRepo, cache CacheRepo, c *conf.Data, logger log.Logger) *ContentUseCase {
	ttl := DefaultMetadataTTL
	if c != nil && c.Cache != nil && c.Cache.MetadataTtl.Duration > 0 {
		ttl = c.Cache.MetadataTtl.Duration
	}
	return &ContentUseCase{
		contents: contents,
		reviews:  reviews,
		cache:    cache,
		ttl:      ttl,
		log:      log.NewHelper(log.With(logger, "module", "biz/content")),
	}
}

// GetMetadata serves metadata cache-aside: the cached copy is authoritative for
// the TTL window, and a miss always writes back. Store calls are detached from
// the caller's cancellation so a dropped client cannot abort the write-back.
// Concurrent misses for the same id each query the database and fill the cache.
func (uc *ContentUseCase) GetMetadata(ctx context.Context, id string) (*ContentMetadata, error) {
	sctx := context.WithoutCancel(ctx)

	cached, ok, err := uc.cache.GetMetadata(sctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata cache: %w", err)
	}
	if ok {
		metrics.MetadataCacheHits.Inc()
		uc.log.WithContext(ctx).Debugf("cache hit for content metadata: %s", id)
		return cached, nil
	}
	metrics.MetadataCacheMisses.Inc()

	uc.log.WithContext(ctx).Debugf("fetching metadata for content %s from database", id)
	m, err := uc.contents.GetByID(sctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content metadata: %w", err)
	}
	if m == nil {
		return nil, ErrContentNotFound
	}

	if err := uc.cache.SetMetadata(sctx, m, uc.ttl); err != nil {
		return nil, fmt.Errorf("failed to cache content metadata: %w", err)
	}
	uc.log.WithContext(ctx).Debugf("content metadata %s stored in cache", id)

	return m, nil
}

// GetDetails fetches metadata, reviews and the live view count concurrently.
// The relational row decides existence; a missing counter reads as zero. The
// fetches ignore caller cancellation; the first failure cancels its siblings.
func (uc *ContentUseCase) GetDetails(ctx context.Context, id string) (*ContentDetails, error) {
	var (
		metadata *ContentMetadata
		reviews  []*Review
		views    int64
	)

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.Go(func() (err error) {
		metadata, err = uc.contents.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		reviews, err = uc.reviews.ListByContent(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		views, err = uc.cache.GetViews(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch content details: %w", err)
	}

	if metadata == nil {
		return nil, ErrContentNotFound
	}
	if reviews == nil {
		reviews = []*Review{}
	}

	return &ContentDetails{
		Metadata:      metadata,
		Reviews:       reviews,
		RealTimeViews: views,
	}, nil
}

// ListReviews returns every review stored for the content id.
func (uc *ContentUseCase) ListReviews(ctx context.Context, id string) ([]*Review, error) {
	reviews, err := uc.reviews.ListByContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*Review{}
	}
	return reviews, nil
}

// ListIDs returns every content id in the catalog.
func (uc *ContentUseCase) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := uc.contents.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	uc.log.WithContext(ctx).Debugf("content ids fetched: %d", len(ids))
	return ids, nil
}

// GetCast returns the cast and crew credited on the content.
func (uc *ContentUseCase) GetCast(ctx context.Context, id string) ([]*CastMember, error) {
	cast, err := uc.contents.ListCast(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list cast: %w", err)
	}
	if cast == nil {
		cast = []*CastMember{}
	}
	return cast, nil
}
