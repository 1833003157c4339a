package data

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database with the catalog and
// analytics schema migrated.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), name+".db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// newTestData wires a Data around sqlite and miniredis. When split is set
// the analytics tables live in a second database.
func newTestData(t *testing.T, split bool) (*Data, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	d := &Data{
		rdb:    rdb,
		logger: log.DefaultLogger,
		log:    log.NewHelper(log.DefaultLogger),
	}
	d.db = newTestDB(t, "main")
	d.analytics = d.db
	if split {
		d.analytics = newTestDB(t, "analytics")
	}
	if err := d.db.AutoMigrate(&ContentMetadata{}, &CastCrew{}, &ContentCastCrew{}); err != nil {
		t.Fatalf("migrate catalog: %v", err)
	}
	if err := d.analytics.AutoMigrate(&User{}, &WatchHistory{}); err != nil {
		t.Fatalf("migrate analytics: %v", err)
	}
	return d, mr
}
