package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// ReviewUseCase handles review submission
type ReviewUseCase struct {
	reviews ReviewRepo
	log     *log.Helper
}

// NewReviewUseCase creates a new ReviewUseCase instance
func NewReviewUseCase(reviews ReviewRepo, logger log.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		reviews: reviews,
		log:     log.NewHelper(log.With(logger, "module", "biz/review")),
	}
}

// Submit stores a new review for contentID. Only presence of user id and rating
// is checked here; the document schema owns the rating bounds.
func (uc *ReviewUseCase) Submit(ctx context.Context, contentID string, req *SubmitReview) (*Review, error) {
	if req == nil || req.UserID == "" || req.Rating == 0 {
		return nil, ErrInvalidReview
	}

	review := &Review{
		ContentID: contentID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := uc.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	uc.log.WithContext(ctx).Infof("review %s added for content %s", review.ID, contentID)
	return review, nil
}
