package biz

import (
	"context"
	"time"
)

// ContentType enumerates catalog entry kinds.
type ContentType string

const (
	ContentTypeMovie       ContentType = "movie"
	ContentTypeSeries      ContentType = "series"
	ContentTypeDocumentary ContentType = "documentary"
)

// ContentMetadata domain model
type ContentMetadata struct {
	ContentID     string      `json:"content_id"`
	Title         string      `json:"title"`
	OriginalTitle string      `json:"original_title"`
	ReleaseDate   time.Time   `json:"release_date"`
	ContentType   ContentType `json:"content_type"`
	Summary       string      `json:"summary"`
	Rating        float64     `json:"rating"`
}

// CastMember domain model
type CastMember struct {
	CharacterName string `json:"character_name"`
	PersonID      string `json:"person_id"`
	PersonName    string `json:"person_name"`
	Role          string `json:"role"`
}

// Reply is a threaded answer to a review.
type Reply struct {
	ID        string    `json:"_id,omitempty"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Review domain model
type Review struct {
	ID         string    `json:"_id,omitempty"`
	ContentID  string    `json:"content_id"`
	UserID     string    `json:"user_id"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IsSpoiler  bool      `json:"is_spoiler"`
	LikesCount int64     `json:"likes_count"`
	Replies    []*Reply  `json:"replies"`
}

// SubmitReview is the write request for a new review.
type SubmitReview struct {
	UserID  string
	Rating  float64
	Comment string
}

// WatchHistoryRow is a watch-history entry joined with username and title.
type WatchHistoryRow struct {
	Username               string    `json:"username"`
	Title                  string    `json:"title"`
	WatchedAt              time.Time `json:"watched_at"`
	DurationWatchedSeconds int64     `json:"duration_watched_seconds"`
}

// TrendingEntry pairs a content id with its trending score.
type TrendingEntry struct {
	ContentID string `json:"content_id"`
	Views     int64  `json:"views"`
}

// ContentDetails merges all three stores for one content id.
type ContentDetails struct {
	Metadata      *ContentMetadata `json:"metadata"`
	Reviews       []*Review        `json:"reviews"`
	RealTimeViews int64            `json:"real_time_views"`
}

// ViewResult is delivered once a background increment finishes.
type ViewResult struct {
	ContentID string
	Views     int64
	Err       error
}

// ContentRepo defines the relational repository for catalog metadata.
type ContentRepo interface {
	// GetByID returns nil, nil when the row does not exist.
	GetByID(ctx context.Context, id string) (*ContentMetadata, error)
	ListIDs(ctx context.Context) ([]string, error)
	ListCast(ctx context.Context, id string) ([]*CastMember, error)
}

// UserRepo defines the relational repository for users.
type UserRepo interface {
	ListIDs(ctx context.Context) ([]string, error)
}

// WatchHistoryRepo defines the analytics repository for watch history.
type WatchHistoryRepo interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]*WatchHistoryRow, error)
}

// ReviewRepo defines the document repository for reviews.
type ReviewRepo interface {
	Create(ctx context.Context, review *Review) error
	ListByContent(ctx context.Context, contentID string) ([]*Review, error)
}

// CacheRepo defines the key-value repository: metadata cache, view counters and trending.
type CacheRepo interface {
	// GetMetadata reports ok=false on a cache miss.
	GetMetadata(ctx context.Context, id string) (m *ContentMetadata, ok bool, err error)
	SetMetadata(ctx context.Context, m *ContentMetadata, ttl time.Duration) error
	IncrViews(ctx context.Context, id string) (int64, error)
	// GetViews returns 0 when no counter exists.
	GetViews(ctx context.Context, id string) (int64, error)
	Trending(ctx context.Context, limit int64) ([]*TrendingEntry, error)
}
