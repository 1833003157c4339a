package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// WatchHistoryLimit caps the rows returned for one user.
const WatchHistoryLimit = 10

// HistoryUseCase serves user listings and watch history from the analytics store.
type HistoryUseCase struct {
	users   UserRepo
	history WatchHistoryRepo
	log     *log.Helper
}

// NewHistoryUseCase creates a new HistoryUseCase instance
func NewHistoryUseCase(users UserRepo, history WatchHistoryRepo, logger log.Logger) *HistoryUseCase {
	return &HistoryUseCase{
		users:   users,
		history: history,
		log:     log.NewHelper(log.With(logger, "module", "biz/history")),
	}
}

// ListUserIDs returns every known user id.
func (uc *HistoryUseCase) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := uc.users.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	uc.log.WithContext(ctx).Debugf("user ids fetched: %d", len(ids))
	return ids, nil
}

// WatchHistory returns the most recent entries for userID, newest first.
func (uc *HistoryUseCase) WatchHistory(ctx context.Context, userID string) ([]*WatchHistoryRow, error) {
	rows, err := uc.history.ListRecent(ctx, userID, WatchHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch history: %w", err)
	}
	if rows == nil {
		rows = []*WatchHistoryRow{}
	}
	return rows, nil
}
