package biz

import (
	"context"
	"fmt"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
)

// TrendingLimit is the size of the daily trending list.
const TrendingLimit = 10

// ViewUseCase owns the real-time view counters and the trending set.
type ViewUseCase struct {
	cache CacheRepo
	log   *log.Helper
}

// NewViewUseCase creates a new ViewUseCase instance
func NewViewUseCase(cache CacheRepo, logger log.Logger) *ViewUseCase {
	return &ViewUseCase{
		cache: cache,
		log:   log.NewHelper(log.With(logger, "module", "biz/views")),
	}
}

// Increment atomically bumps the view counter and returns the new count.
func (uc *ViewUseCase) Increment(ctx context.Context, id string) (int64, error) {
	views, err := uc.cache.IncrViews(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}

// IncrementAsync runs Increment in the background, detached from the caller's
// cancellation. Failures are logged and never returned to the caller. The
// returned channel is buffered, receives exactly one result and is then closed,
// so callers are free to ignore it.
func (uc *ViewUseCase) IncrementAsync(ctx context.Context, id string) <-chan ViewResult {
	out := make(chan ViewResult, 1)
	bg := context.WithoutCancel(ctx)

	go func() {
		defer close(out)

		views, err := uc.Increment(bg, id)
		if err != nil {
			metrics.ViewIncrements.WithLabelValues("error").Inc()
			uc.log.WithContext(bg).Errorf("error incrementing views for content %s: %v", id, err)
		} else {
			metrics.ViewIncrements.WithLabelValues("ok").Inc()
			uc.log.WithContext(bg).Debugf("content %s now has %d views", id, views)
		}
		out <- ViewResult{ContentID: id, Views: views, Err: err}
	}()

	return out
}

// Trending returns the top entries of the daily set, highest score first.
func (uc *ViewUseCase) Trending(ctx context.Context) ([]*TrendingEntry, error) {
	entries, err := uc.cache.Trending(ctx, TrendingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending: %w", err)
	}
	if entries == nil {
		entries = []*TrendingEntry{}
	}
	return entries, nil
}
