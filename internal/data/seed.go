package data

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
)

// SeedReport summarizes one Seed run.
type SeedReport struct {
	Contents      int
	Users         int
	Reviews       int
	WatchHistory  int
	SampleContent string
	SampleUser    string
}

var contentTypes = []biz.ContentType{biz.ContentTypeMovie, biz.ContentTypeSeries, biz.ContentTypeDocumentary}

var (
	titleWords = []string{"Midnight", "Garden", "Ocean", "Shadow", "Harbor", "Empire", "Silent", "Crimson", "Island", "Journey", "Winter", "Echo"}
	firstNames = []string{"Budi", "Siti", "Andi", "Dewi", "Rizky", "Putri", "Agus", "Intan", "Fajar", "Ayu"}
	lastNames  = []string{"Santoso", "Wijaya", "Saputra", "Lestari", "Pratama", "Kusuma", "Hidayat", "Nugroho"}
	sentences  = []string{
		"A story that stays with you long after the credits.",
		"Beautifully shot but the pacing drags in the middle.",
		"The cast carries a thin script.",
		"One of the best of the year.",
		"Not my thing, although the soundtrack is great.",
	}
)

// Migrate creates the relational schema. Catalog tables live on the main
// database and user tables on analytics.
func (d *Data) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(&ContentMetadata{}, &CastCrew{}, &ContentCastCrew{}); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	if err := d.analytics.WithContext(ctx).AutoMigrate(&User{}, &WatchHistory{}); err != nil {
		return fmt.Errorf("migrate analytics: %w", err)
	}
	return nil
}

// Seed wipes every store and fills it with n synthetic contents and users,
// 3n reviews and 3n watch history rows. Metadata is pre-cached and the daily
// trending set gets a random score per content.
func (d *Data) Seed(ctx context.Context, n int, rnd *rand.Rand) (*SeedReport, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seed size must be positive, got %d", n)
	}
	if err := d.truncate(ctx); err != nil {
		return nil, err
	}

	contents := make([]ContentMetadata, 0, n)
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		first, last := pick(rnd, firstNames), pick(rnd, lastNames)
		contents = append(contents, ContentMetadata{
			ContentID:     uuid.NewString(),
			Title:         fakeTitle(rnd),
			OriginalTitle: fakeTitle(rnd),
			ReleaseDate:   releaseDate(time.Now(), rnd),
			ContentType:   string(pick(rnd, contentTypes)),
			Summary:       pick(rnd, sentences) + " " + pick(rnd, sentences),
			Rating:        float64(6 + rnd.IntN(5)),
		})
		username := fmt.Sprintf("%s.%s%d", first, last, rnd.IntN(100))
		users = append(users, User{
			UserID:   uuid.NewString(),
			Username: username,
			Email:    username + "@example.com",
		})
	}

	if err := d.db.WithContext(ctx).CreateInBatches(contents, 100).Error; err != nil {
		return nil, fmt.Errorf("insert contents: %w", err)
	}
	if err := d.analytics.WithContext(ctx).CreateInBatches(users, 100).Error; err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}

	reviews := NewReviewRepo(d, d.logger)
	history := make([]WatchHistory, 0, 3*n)
	for i := 0; i < 3*n; i++ {
		c, u := contents[rnd.IntN(n)], users[rnd.IntN(n)]
		if err := reviews.Create(ctx, &biz.Review{
			ContentID: c.ContentID,
			UserID:    u.UserID,
			Rating:    float64(1 + rnd.IntN(10)),
			Comment:   pick(rnd, sentences),
		}); err != nil {
			return nil, fmt.Errorf("insert review: %w", err)
		}
		history = append(history, WatchHistory{
			UserID:                 u.UserID,
			ContentID:              c.ContentID,
			WatchedAt:              time.Now().Add(-time.Duration(rnd.IntN(30*24)) * time.Hour),
			DurationWatchedSeconds: int64(60 + rnd.IntN(7141)),
			LastPositionSeconds:    int64(60 + rnd.IntN(7141)),
		})
	}
	if err := d.analytics.WithContext(ctx).CreateInBatches(history, 100).Error; err != nil {
		return nil, fmt.Errorf("insert watch history: %w", err)
	}

	cache := NewCacheRepo(d, d.logger)
	for i := range contents {
		if err := cache.SetMetadata(ctx, contentToBiz(&contents[i]), biz.DefaultMetadataTTL); err != nil {
			return nil, err
		}
		if err := d.rdb.ZIncrBy(ctx, trendingDailyKey, float64(10+rnd.IntN(991)), contents[i].ContentID).Err(); err != nil {
			return nil, fmt.Errorf("seed trending: %w", err)
		}
	}

	return &SeedReport{
		Contents:      len(contents),
		Users:         len(users),
		Reviews:       3 * n,
		WatchHistory:  len(history),
		SampleContent: contents[0].ContentID,
		SampleUser:    users[0].UserID,
	}, nil
}

func (d *Data) truncate(ctx context.Context) error {
	all := &gorm.Session{AllowGlobalUpdate: true}
	for _, m := range []interface{}{&ContentCastCrew{}, &CastCrew{}, &ContentMetadata{}} {
		if err := d.db.WithContext(ctx).Session(all).Delete(m).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}
	for _, m := range []interface{}{&WatchHistory{}, &User{}} {
		if err := d.analytics.WithContext(ctx).Session(all).Delete(m).Error; err != nil {
			return fmt.Errorf("clear analytics: %w", err)
		}
	}
	if _, err := d.mdb.Collection(reviewsCollection).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}
	if err := d.rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// releaseDate returns a UTC midnight up to ten years before now, the shape a
// read of the date column yields.
func releaseDate(now time.Time, rnd *rand.Rand) time.Time {
	return now.UTC().AddDate(0, 0, -rnd.IntN(3650)).Truncate(24 * time.Hour)
}

func pick[T any](rnd *rand.Rand, xs []T) T {
	return xs[rnd.IntN(len(xs))]
}

func fakeTitle(rnd *rand.Rand) string {
	return pick(rnd, titleWords) + " " + pick(rnd, titleWords)
}
