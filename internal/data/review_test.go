package data

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
)

func TestReviewSchema(t *testing.T) {
	valid := ReviewDoc{ContentID: "c1", UserID: "u1", Rating: 7, Replies: []ReplyDoc{}}

	tests := []struct {
		name    string
		mutate  func(*ReviewDoc)
		wantErr string
	}{
		{name: "valid", mutate: func(*ReviewDoc) {}},
		{name: "lowest rating", mutate: func(d *ReviewDoc) { d.Rating = 1 }},
		{name: "highest rating", mutate: func(d *ReviewDoc) { d.Rating = 10 }},
		{name: "rating above range", mutate: func(d *ReviewDoc) { d.Rating = 11 }, wantErr: "Rating"},
		{name: "rating below range", mutate: func(d *ReviewDoc) { d.Rating = 0.5 }, wantErr: "Rating"},
		{name: "missing user", mutate: func(d *ReviewDoc) { d.UserID = "" }, wantErr: "UserID"},
		{name: "missing content", mutate: func(d *ReviewDoc) { d.ContentID = "" }, wantErr: "ContentID"},
		{
			name:    "reply without comment",
			mutate:  func(d *ReviewDoc) { d.Replies = []ReplyDoc{{UserID: "u2"}} },
			wantErr: "Comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid
			tt.mutate(&doc)

			err := schema().Struct(doc)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

// newOfflineReviewRepo builds a repository on a client that never reaches a
// server; the driver connects lazily so only pre-insert paths are usable.
func newOfflineReviewRepo(t *testing.T) biz.ReviewRepo {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(100*time.Millisecond))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewReviewRepo(&Data{mdb: client.Database("test")}, log.DefaultLogger)
}

func TestReviewRepo_RejectsOutOfRangeRating(t *testing.T) {
	repo := newOfflineReviewRepo(t)

	err := repo.Create(context.Background(), &biz.Review{ContentID: "c1", UserID: "u1", Rating: 11})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("err = %v, want validation failure", err)
	}
}

func TestReviewDocConversion(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	replyID := primitive.NewObjectID()

	doc := reviewToDoc(&biz.Review{
		ContentID: "c1",
		UserID:    "u1",
		Rating:    9,
		Comment:   "loved it",
		CreatedAt: created,
		Replies: []*biz.Reply{
			{ID: replyID.Hex(), UserID: "u2", Comment: "same"},
			{UserID: "u3", Comment: "nope"},
		},
	})
	if !doc.ID.IsZero() {
		t.Errorf("new review got id %s", doc.ID.Hex())
	}
	if len(doc.Replies) != 2 || doc.Replies[0].ID != replyID || doc.Replies[1].ID.IsZero() {
		t.Errorf("reply ids = %+v", doc.Replies)
	}
	for _, r := range doc.Replies {
		if r.CreatedAt.IsZero() {
			t.Error("reply created_at not defaulted")
		}
	}

	doc.ID = primitive.NewObjectID()
	back := docToReview(doc)
	if back.ID != doc.ID.Hex() || back.Rating != 9 || !back.CreatedAt.Equal(created) {
		t.Errorf("back = %+v", back)
	}
	if len(back.Replies) != 2 || back.Replies[0].ID != replyID.Hex() {
		t.Errorf("replies = %+v", back.Replies)
	}
	if back.IsSpoiler || back.LikesCount != 0 {
		t.Errorf("defaults = spoiler %v likes %d", back.IsSpoiler, back.LikesCount)
	}
}
