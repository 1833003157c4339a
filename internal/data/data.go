package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewContentRepo,
	NewUserRepo,
	NewWatchHistoryRepo,
	NewReviewRepo,
	NewCacheRepo,
)

// ErrBootstrap is returned when a store stays unreachable for the whole retry budget.
var ErrBootstrap = errors.New("failed to connect to databases")

const reviewsCollection = "reviews"

// Data encapsulates the relational, document and cache connections
type Data struct {
	db        *gorm.DB
	analytics *gorm.DB
	rdb       *redis.Client
	mongo     *mongo.Client
	mdb       *mongo.Database
	logger    log.Logger
	log       *log.Helper
}

// NewData connects to every store with bounded retries. Any store still
// unreachable after the last attempt fails the whole bootstrap.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(log.With(logger, "module", "data"))

	attempts, delay := 10, 3*time.Second
	if c.Bootstrap != nil {
		if c.Bootstrap.MaxAttempts > 0 {
			attempts = c.Bootstrap.MaxAttempts
		}
		if d := c.Bootstrap.RetryDelay.AsDuration(); d > 0 {
			delay = d
		}
	}

	var data *Data
	err := retry(context.Background(), attempts, delay, l, func(ctx context.Context) error {
		d, err := connect(ctx, c, l)
		if err != nil {
			return err
		}
		d.logger = logger
		data = d
		return nil
	})
	if err != nil {
		l.Errorf("failed to connect to databases after %d attempts: %v", attempts, err)
		return nil, nil, fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	l.Info("all databases are connected")

	cleanup := func() {
		l.Info("closing data resources")
		data.close(context.Background())
	}

	return data, cleanup, nil
}

// connect performs one bootstrap attempt and releases whatever it opened on failure.
func connect(ctx context.Context, c *conf.Data, l *log.Helper) (_ *Data, err error) {
	d := &Data{log: l}
	defer func() {
		if err != nil {
			d.close(ctx)
		}
	}()

	if d.db, err = openDB(c.Database); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	l.Info("postgres connected successfully")

	d.analytics = d.db
	if c.Analytics != nil && c.Analytics.Source != "" {
		if d.analytics, err = openDB(c.Analytics); err != nil {
			return nil, fmt.Errorf("postgres analytics: %w", err)
		}
		l.Info("postgres analytics connected successfully")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if d.mongo, err = mongo.Connect(pingCtx, options.Client().ApplyURI(c.Mongo.Uri)); err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}
	if err = d.mongo.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	d.mdb = d.mongo.Database(c.Mongo.Database)
	if err = ensureIndexes(pingCtx, d.mdb); err != nil {
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	l.Info("mongo connected successfully")

	d.rdb = redis.NewClient(&redis.Options{
		Addr:         c.Redis.Addr,
		Password:     c.Redis.Password,
		DB:           c.Redis.Db,
		ReadTimeout:  redisTimeout(c.Redis.ReadTimeout),
		WriteTimeout: redisTimeout(c.Redis.WriteTimeout),
	})
	if err = d.rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	l.Info("redis connected successfully")

	return d, nil
}

// redisTimeout maps an unset timeout to go-redis' "no deadline" (-1).
func redisTimeout(d conf.Duration) time.Duration {
	if d.Duration <= 0 {
		return -1
	}
	return d.Duration
}

func openDB(c *conf.Data_Database) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.Source), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(orDefault(c.MaxIdleConns, 10))
	sqlDB.SetMaxOpenConns(orDefault(c.MaxOpenConns, 100))
	lifetime := c.MaxLifetime.AsDuration()
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	return db, nil
}

func ensureIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection(reviewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "content_id", Value: 1}},
	})
	return err
}

func (d *Data) close(ctx context.Context) {
	if d.rdb != nil {
		if err := d.rdb.Close(); err != nil {
			d.log.Errorf("failed to close redis: %v", err)
		}
	}
	if d.mongo != nil {
		if err := d.mongo.Disconnect(ctx); err != nil {
			d.log.Errorf("failed to close mongo: %v", err)
		}
	}
	if d.analytics != nil && d.analytics != d.db {
		closeDB(d.analytics, d.log)
	}
	if d.db != nil {
		closeDB(d.db, d.log)
	}
}

func closeDB(db *gorm.DB, l *log.Helper) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		l.Errorf("failed to close database: %v", err)
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
