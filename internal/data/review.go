package data

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplyDoc is an embedded reply inside a review document.
type ReplyDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id" validate:"required"`
	Comment   string             `bson:"comment" validate:"required"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ReviewDoc is the shape of a document in the reviews collection.
type ReviewDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ContentID  string             `bson:"content_id" validate:"required"`
	UserID     string             `bson:"user_id" validate:"required"`
	Rating     float64            `bson:"rating" validate:"omitempty,min=1,max=10"`
	Comment    string             `bson:"comment,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	IsSpoiler  bool               `bson:"is_spoiler"`
	LikesCount int64              `bson:"likes_count"`
	Replies    []ReplyDoc         `bson:"replies" validate:"dive"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// schema returns the shared validator enforcing the reviews collection schema.
func schema() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type reviewRepo struct {
	col *mongo.Collection
	log *log.Helper
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(data *Data, logger log.Logger) biz.ReviewRepo {
	return &reviewRepo{
		col: data.mdb.Collection(reviewsCollection),
		log: log.NewHelper(log.With(logger, "module", "data/review")),
	}
}

// Create applies document defaults, checks the collection schema and inserts.
// A schema violation is reported like any other store failure.
func (r *reviewRepo) Create(ctx context.Context, review *biz.Review) error {
	doc := reviewToDoc(review)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.Replies == nil {
		doc.Replies = []ReplyDoc{}
	}
	if err := schema().Struct(doc); err != nil {
		return fmt.Errorf("review validation failed: %w", err)
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("mongo", "insert_review").Inc()
		return fmt.Errorf("failed to insert review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}

	*review = *docToReview(doc)
	return nil
}

func (r *reviewRepo) ListByContent(ctx context.Context, contentID string) ([]*biz.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"content_id": contentID})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("mongo", "find_reviews").Inc()
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*biz.Review, 0)
	for cur.Next(ctx) {
		var doc ReviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		out = append(out, docToReview(&doc))
	}
	if err := cur.Err(); err != nil {
		metrics.StoreErrors.WithLabelValues("mongo", "find_reviews").Inc()
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return out, nil
}

func reviewToDoc(r *biz.Review) *ReviewDoc {
	doc := &ReviewDoc{
		ContentID:  r.ContentID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		IsSpoiler:  r.IsSpoiler,
		LikesCount: r.LikesCount,
	}
	if r.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(r.ID); err == nil {
			doc.ID = oid
		}
	}
	for _, reply := range r.Replies {
		rd := ReplyDoc{
			ID:        primitive.NewObjectID(),
			UserID:    reply.UserID,
			Comment:   reply.Comment,
			CreatedAt: reply.CreatedAt,
		}
		if oid, err := primitive.ObjectIDFromHex(reply.ID); err == nil {
			rd.ID = oid
		}
		if rd.CreatedAt.IsZero() {
			rd.CreatedAt = time.Now().UTC()
		}
		doc.Replies = append(doc.Replies, rd)
	}
	return doc
}

func docToReview(doc *ReviewDoc) *biz.Review {
	r := &biz.Review{
		ContentID:  doc.ContentID,
		UserID:     doc.UserID,
		Rating:     doc.Rating,
		Comment:    doc.Comment,
		CreatedAt:  doc.CreatedAt,
		IsSpoiler:  doc.IsSpoiler,
		LikesCount: doc.LikesCount,
		Replies:    make([]*biz.Reply, 0, len(doc.Replies)),
	}
	if !doc.ID.IsZero() {
		r.ID = doc.ID.Hex()
	}
	for _, reply := range doc.Replies {
		br := &biz.Reply{
			UserID:    reply.UserID,
			Comment:   reply.Comment,
			CreatedAt: reply.CreatedAt,
		}
		if !reply.ID.IsZero() {
			br.ID = reply.ID.Hex()
		}
		r.Replies = append(r.Replies, br)
	}
	return r
}
