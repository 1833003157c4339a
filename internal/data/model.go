package data

import (
	"time"
)

// ContentMetadata represents the content_metadata table
type ContentMetadata struct {
	ContentID     string    `gorm:"column:content_id;primaryKey;size:36"`
	Title         string    `gorm:"not null;size:255"`
	OriginalTitle string    `gorm:"size:255"`
	ReleaseDate   time.Time `gorm:"type:date"`
	ContentType   string    `gorm:"size:20;check:content_type IN ('movie','series','documentary')"`
	Summary       string    `gorm:"type:text"`
	Rating        float64   `gorm:"type:numeric(3,1)"`
}

// TableName overrides the table name
func (ContentMetadata) TableName() string {
	return "content_metadata"
}

// CastCrew represents the cast_crew table
type CastCrew struct {
	PersonID string `gorm:"column:person_id;primaryKey;size:36"`
	Name     string `gorm:"not null;size:255"`
	Role     string `gorm:"size:100"`
}

// TableName overrides the table name
func (CastCrew) TableName() string {
	return "cast_crew"
}

// ContentCastCrew represents the content_cast_crew junction table
type ContentCastCrew struct {
	ContentID     string `gorm:"column:content_id;primaryKey;size:36"`
	PersonID      string `gorm:"column:person_id;primaryKey;size:36"`
	CharacterName string `gorm:"size:255"`
}

// TableName overrides the table name
func (ContentCastCrew) TableName() string {
	return "content_cast_crew"
}

// User represents the users table on the analytics instance
type User struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:36"`
	Username  string    `gorm:"not null;size:100"`
	Email     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// WatchHistory represents the user_watch_history table on the analytics instance
type WatchHistory struct {
	ID                     uint      `gorm:"primaryKey"`
	UserID                 string    `gorm:"column:user_id;not null;size:36;index:idx_watch_history_user_watched,priority:1"`
	ContentID              string    `gorm:"column:content_id;not null;size:36"`
	WatchedAt              time.Time `gorm:"not null;autoCreateTime;index:idx_watch_history_user_watched,priority:2,sort:desc"`
	DurationWatchedSeconds int64     `gorm:"column:duration_watched_seconds"`
	LastPositionSeconds    int64     `gorm:"column:last_position_seconds"`
}

// TableName overrides the table name
func (WatchHistory) TableName() string {
	return "user_watch_history"
}
