package service

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewContentService)

// Response messages
const (
	MsgContentNotFound = "Content not found"
	MsgReviewRequired  = "User ID and rating are required."
	MsgReviewAdded     = "Review added successfully"
	MsgViewIncremented = "View count incremented"
)

// ContentService implements the catalog HTTP API
type ContentService struct {
	contentUC *biz.ContentUseCase
	reviewUC  *biz.ReviewUseCase
	viewUC    *biz.ViewUseCase
	historyUC *biz.HistoryUseCase
	log       *log.Helper
}

// NewContentService creates a new ContentService
func NewContentService(contentUC *biz.ContentUseCase, reviewUC *biz.ReviewUseCase, viewUC *biz.ViewUseCase, historyUC *biz.HistoryUseCase, logger log.Logger) *ContentService {
	return &ContentService{
		contentUC: contentUC,
		reviewUC:  reviewUC,
		viewUC:    viewUC,
		historyUC: historyUC,
		log:       log.NewHelper(log.With(logger, "module", "service/content")),
	}
}

// ContentRequest addresses one catalog entry.
type ContentRequest struct {
	ID string `json:"id"`
}

// UserRequest addresses one user.
type UserRequest struct {
	UserID string `json:"userId"`
}

// AddReviewRequest is the body of POST /{id}/reviews.
type AddReviewRequest struct {
	ContentID string     `json:"-"`
	UserID    looseValue `json:"user_id"`
	Rating    looseValue `json:"rating"`
	Comment   string     `json:"comment"`
}

// MessageReply carries a human-readable acknowledgement.
type MessageReply struct {
	Message string `json:"message"`
}

// ListContentIDs implements GET /ids
func (s *ContentService) ListContentIDs(ctx context.Context, _ *struct{}) ([]string, error) {
	ids, err := s.contentUC.ListIDs(ctx)
	if err != nil {
		return nil, s.toError(ctx, "error fetching all content ids", err)
	}
	return ids, nil
}

// ListUserIDs implements GET /users/ids
func (s *ContentService) ListUserIDs(ctx context.Context, _ *struct{}) ([]string, error) {
	ids, err := s.historyUC.ListUserIDs(ctx)
	if err != nil {
		return nil, s.toError(ctx, "error fetching all user ids", err)
	}
	return ids, nil
}

// GetTrending implements GET /trending/daily
func (s *ContentService) GetTrending(ctx context.Context, _ *struct{}) ([]*biz.TrendingEntry, error) {
	entries, err := s.viewUC.Trending(ctx)
	if err != nil {
		return nil, s.toError(ctx, "error fetching trending data", err)
	}
	return entries, nil
}

// GetMetadata implements GET /{id}
func (s *ContentService) GetMetadata(ctx context.Context, req *ContentRequest) (*biz.ContentMetadata, error) {
	m, err := s.contentUC.GetMetadata(ctx, req.ID)
	if err != nil {
		return nil, s.toError(ctx, "error fetching content metadata", err)
	}
	return m, nil
}

// ListReviews implements GET /{id}/reviews
func (s *ContentService) ListReviews(ctx context.Context, req *ContentRequest) ([]*biz.Review, error) {
	reviews, err := s.contentUC.ListReviews(ctx, req.ID)
	if err != nil {
		return nil, s.toError(ctx, "error fetching reviews for content", err)
	}
	return reviews, nil
}

// GetDetails implements GET /{id}/details
func (s *ContentService) GetDetails(ctx context.Context, req *ContentRequest) (*biz.ContentDetails, error) {
	details, err := s.contentUC.GetDetails(ctx, req.ID)
	if err != nil {
		return nil, s.toError(ctx, "error fetching detailed content info", err)
	}
	return details, nil
}

// GetCast implements GET /{id}/cast
func (s *ContentService) GetCast(ctx context.Context, req *ContentRequest) ([]*biz.CastMember, error) {
	cast, err := s.contentUC.GetCast(ctx, req.ID)
	if err != nil {
		return nil, s.toError(ctx, "error fetching cast for content", err)
	}
	return cast, nil
}

// IncrementViews implements POST /{id}/views/increment. The increment runs in
// the background and the acknowledgement does not reflect its outcome.
func (s *ContentService) IncrementViews(ctx context.Context, req *ContentRequest) (string, error) {
	s.viewUC.IncrementAsync(ctx, req.ID)
	return MsgViewIncremented, nil
}

// AddReview implements POST /{id}/reviews. Numeric strings are accepted for
// rating and numbers for user_id; values that cannot be cast fail as 500.
func (s *ContentService) AddReview(ctx context.Context, req *AddReviewRequest) (*MessageReply, error) {
	if req.UserID == "" || req.Rating == "" {
		return nil, s.toError(ctx, "error adding review", biz.ErrInvalidReview)
	}
	userID, err := reviewUserID(req.UserID)
	if err != nil {
		return nil, s.toError(ctx, "error adding review", err)
	}
	rating, err := reviewRating(req.Rating)
	if err != nil {
		return nil, s.toError(ctx, "error adding review", err)
	}
	_, err = s.reviewUC.Submit(ctx, req.ContentID, &biz.SubmitReview{
		UserID:  userID,
		Rating:  rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, s.toError(ctx, "error adding review", err)
	}
	return &MessageReply{Message: MsgReviewAdded}, nil
}

// GetWatchHistory implements GET /users/{userId}/watch-history
func (s *ContentService) GetWatchHistory(ctx context.Context, req *UserRequest) ([]*biz.WatchHistoryRow, error) {
	rows, err := s.historyUC.WatchHistory(ctx, req.UserID)
	if err != nil {
		return nil, s.toError(ctx, "error fetching user watch history", err)
	}
	return rows, nil
}

// toError maps use case failures onto transport errors. Anything that is not a
// not-found or validation failure becomes a 500 carrying the raw message.
func (s *ContentService) toError(ctx context.Context, op string, err error) error {
	switch {
	case stderrors.Is(err, biz.ErrContentNotFound):
		return errors.NotFound("CONTENT_NOT_FOUND", MsgContentNotFound)
	case stderrors.Is(err, biz.ErrInvalidReview):
		return errors.BadRequest("INVALID_REVIEW", MsgReviewRequired)
	}
	s.log.WithContext(ctx).Errorf("%s: %v", op, err)
	return errors.InternalServer("INTERNAL_SERVER_ERROR", err.Error()).WithCause(err)
}
