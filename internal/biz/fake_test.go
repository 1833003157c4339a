package biz

import (
	"context"
	"sort"
	"sync"
	"time"
)

type fakeContentRepo struct {
	mu      sync.Mutex
	rows    map[string]*ContentMetadata
	cast    map[string][]*CastMember
	err     error
	getByID int
}

func newFakeContentRepo(rows ...*ContentMetadata) *fakeContentRepo {
	r := &fakeContentRepo{rows: map[string]*ContentMetadata{}, cast: map[string][]*CastMember{}}
	for _, m := range rows {
		r.rows[m.ContentID] = m
	}
	return r
}

func (r *fakeContentRepo) GetByID(_ context.Context, id string) (*ContentMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByID++
	if r.err != nil {
		return nil, r.err
	}
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeContentRepo) ListIDs(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var ids []string
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeContentRepo) ListCast(_ context.Context, id string) ([]*CastMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.cast[id], nil
}

func (r *fakeContentRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getByID
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []*Review
	err     error
}

func (r *fakeReviewRepo) Create(_ context.Context, review *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	review.ID = time.Now().Format(time.RFC3339Nano)
	cp := *review
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) ListByContent(_ context.Context, contentID string) ([]*Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*Review
	for _, rv := range r.reviews {
		if rv.ContentID == contentID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	metadata map[string]*ContentMetadata
	ttls     map[string]time.Duration
	views    map[string]int64
	trending map[string]float64
	err      error
	setErr   error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		metadata: map[string]*ContentMetadata{},
		ttls:     map[string]time.Duration{},
		views:    map[string]int64{},
		trending: map[string]float64{},
	}
}

func (c *fakeCacheRepo) GetMetadata(_ context.Context, id string) (*ContentMetadata, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, false, c.err
	}
	m, ok := c.metadata[id]
	return m, ok, nil
}

func (c *fakeCacheRepo) SetMetadata(_ context.Context, m *ContentMetadata, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.metadata[m.ContentID] = m
	c.ttls[m.ContentID] = ttl
	return nil
}

func (c *fakeCacheRepo) IncrViews(_ context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	c.views[id]++
	return c.views[id], nil
}

func (c *fakeCacheRepo) GetViews(_ context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	return c.views[id], nil
}

func (c *fakeCacheRepo) Trending(_ context.Context, limit int64) ([]*TrendingEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	var out []*TrendingEntry
	for id, score := range c.trending {
		out = append(out, &TrendingEntry{ContentID: id, Views: int64(score)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeUserRepo struct {
	ids []string
	err error
}

func (r *fakeUserRepo) ListIDs(context.Context) ([]string, error) { return r.ids, r.err }

type fakeHistoryRepo struct {
	rows      []*WatchHistoryRow
	err       error
	lastLimit int
}

func (r *fakeHistoryRepo) ListRecent(_ context.Context, _ string, limit int) ([]*WatchHistoryRow, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	if len(r.rows) > limit {
		return r.rows[:limit], nil
	}
	return r.rows, nil
}
