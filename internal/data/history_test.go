package data

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

func seedHistory(t *testing.T, d *Data, entries int) time.Time {
	t.Helper()

	users := []User{
		{UserID: "u1", Username: "budi", Email: "budi@example.com"},
		{UserID: "u2", Username: "siti", Email: "siti@example.com"},
	}
	if err := d.analytics.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var rows []WatchHistory
	for i := 0; i < entries; i++ {
		rows = append(rows, WatchHistory{
			UserID:                 "u1",
			ContentID:              []string{"c1", "c2"}[i%2],
			WatchedAt:              base.Add(time.Duration(i) * time.Minute),
			DurationWatchedSeconds: int64(60 * (i + 1)),
		})
	}
	// one row pointing at content missing from the catalog
	rows = append(rows, WatchHistory{UserID: "u1", ContentID: "gone", WatchedAt: base.Add(-time.Hour)})
	if err := d.analytics.Create(&rows).Error; err != nil {
		t.Fatalf("seed history: %v", err)
	}
	return base
}

func TestWatchHistoryRepo_ListRecent(t *testing.T) {
	for _, split := range []bool{false, true} {
		t.Run(fmt.Sprintf("split=%v", split), func(t *testing.T) {
			ctx := context.Background()
			d, _ := newTestData(t, split)
			seedCatalog(t, d)
			base := seedHistory(t, d, 12)
			repo := NewWatchHistoryRepo(d, log.DefaultLogger)

			rows, err := repo.ListRecent(ctx, "u1", 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(rows) != 10 {
				t.Fatalf("rows = %d, want 10", len(rows))
			}
			// newest first
			if !rows[0].WatchedAt.Equal(base.Add(11 * time.Minute)) {
				t.Errorf("first watched_at = %v", rows[0].WatchedAt)
			}
			for i := 1; i < len(rows); i++ {
				if rows[i].WatchedAt.After(rows[i-1].WatchedAt) {
					t.Fatalf("rows not ordered at %d", i)
				}
			}
			if rows[0].Username != "budi" || rows[0].Title != "Winter Echo" {
				t.Errorf("first row = %+v", rows[0])
			}

			rows, err = repo.ListRecent(ctx, "u2", 10)
			if err != nil {
				t.Fatal(err)
			}
			if rows == nil || len(rows) != 0 {
				t.Errorf("no history: rows = %#v", rows)
			}
		})
	}
}

func TestWatchHistoryRepo_DropsUnknownContent(t *testing.T) {
	for _, split := range []bool{false, true} {
		t.Run(fmt.Sprintf("split=%v", split), func(t *testing.T) {
			ctx := context.Background()
			d, _ := newTestData(t, split)
			seedCatalog(t, d)
			seedHistory(t, d, 2)
			repo := NewWatchHistoryRepo(d, log.DefaultLogger)

			rows, err := repo.ListRecent(ctx, "u1", 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(rows) != 2 {
				t.Errorf("rows = %d, want 2", len(rows))
			}
		})
	}
}

func TestUserRepo_ListIDs(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestData(t, true)
	seedHistory(t, d, 0)
	repo := NewUserRepo(d, log.DefaultLogger)

	ids, err := repo.ListIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Errorf("ids = %v, want 2", ids)
	}
}
