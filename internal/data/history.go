package data

import (
	"context"
	"fmt"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
)

type userRepo struct {
	data *Data
	log  *log.Helper
}

// NewUserRepo creates a new user repository on the analytics instance
func NewUserRepo(data *Data, logger log.Logger) biz.UserRepo {
	return &userRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/user")),
	}
}

func (r *userRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := r.data.analytics.WithContext(ctx).Model(&User{}).Pluck("user_id", &ids).Error; err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "list_user_ids").Inc()
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	return ids, nil
}

type watchHistoryRepo struct {
	data *Data
	log  *log.Helper
}

// NewWatchHistoryRepo creates a new watch history repository
func NewWatchHistoryRepo(data *Data, logger log.Logger) biz.WatchHistoryRepo {
	return &watchHistoryRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/history")),
	}
}

type historyRow struct {
	Username               string
	ContentID              string
	Title                  string
	WatchedAt              time.Time
	DurationWatchedSeconds int64
}

// ListRecent joins history with users and content titles. When the analytics
// tables live on the main instance (foreign tables) this is one query;
// otherwise titles are merged from the main instance in a second query.
func (r *watchHistoryRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*biz.WatchHistoryRow, error) {
	if r.data.analytics == r.data.db {
		return r.listJoined(ctx, userID, limit)
	}
	return r.listMerged(ctx, userID, limit)
}

func (r *watchHistoryRepo) listJoined(ctx context.Context, userID string, limit int) ([]*biz.WatchHistoryRow, error) {
	var rows []historyRow
	err := r.data.db.WithContext(ctx).Raw(`
		SELECT u.username, cm.title, wh.watched_at, wh.duration_watched_seconds
		FROM user_watch_history AS wh
		JOIN users AS u ON wh.user_id = u.user_id
		JOIN content_metadata AS cm ON wh.content_id = cm.content_id
		WHERE u.user_id = ?
		ORDER BY wh.watched_at DESC
		LIMIT ?`, userID, limit).Scan(&rows).Error
	if err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "watch_history").Inc()
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	return historyToBiz(rows), nil
}

func (r *watchHistoryRepo) listMerged(ctx context.Context, userID string, limit int) ([]*biz.WatchHistoryRow, error) {
	var rows []historyRow
	err := r.data.analytics.WithContext(ctx).Raw(`
		SELECT u.username, wh.content_id, wh.watched_at, wh.duration_watched_seconds
		FROM user_watch_history AS wh
		JOIN users AS u ON wh.user_id = u.user_id
		WHERE u.user_id = ?
		ORDER BY wh.watched_at DESC
		LIMIT ?`, userID, limit).Scan(&rows).Error
	if err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "watch_history").Inc()
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	if len(rows) == 0 {
		return []*biz.WatchHistoryRow{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ContentID)
	}
	var titles []struct {
		ContentID string
		Title     string
	}
	err = r.data.db.WithContext(ctx).Model(&ContentMetadata{}).
		Select("content_id, title").
		Where("content_id IN ?", ids).
		Scan(&titles).Error
	if err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "watch_history_titles").Inc()
		return nil, fmt.Errorf("failed to query content titles: %w", err)
	}
	byID := make(map[string]string, len(titles))
	for _, t := range titles {
		byID[t.ContentID] = t.Title
	}

	// Rows without a catalog entry are dropped, as the inner join would.
	joined := rows[:0]
	for _, row := range rows {
		title, ok := byID[row.ContentID]
		if !ok {
			continue
		}
		row.Title = title
		joined = append(joined, row)
	}
	return historyToBiz(joined), nil
}

func historyToBiz(rows []historyRow) []*biz.WatchHistoryRow {
	out := make([]*biz.WatchHistoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &biz.WatchHistoryRow{
			Username:               row.Username,
			Title:                  row.Title,
			WatchedAt:              row.WatchedAt,
			DurationWatchedSeconds: row.DurationWatchedSeconds,
		})
	}
	return out
}
