package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
)

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *SubmitReview
		wantErr error
	}{
		{name: "valid", req: &SubmitReview{UserID: "u1", Rating: 8, Comment: "great"}},
		{name: "no comment", req: &SubmitReview{UserID: "u1", Rating: 3}},
		{name: "missing user", req: &SubmitReview{Rating: 8}, wantErr: ErrInvalidReview},
		{name: "missing rating", req: &SubmitReview{UserID: "u1"}, wantErr: ErrInvalidReview},
		{name: "nil request", req: nil, wantErr: ErrInvalidReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReviewRepo{}
			uc := NewReviewUseCase(repo, log.DefaultLogger)

			review, err := uc.Submit(ctx, "c1", tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if len(repo.reviews) != 0 {
					t.Error("invalid review was stored")
				}
				return
			}
			if review.ID == "" || review.ContentID != "c1" {
				t.Errorf("review = %+v", review)
			}

			stored, _ := repo.ListByContent(ctx, "c1")
			if len(stored) != 1 || stored[0].UserID != tt.req.UserID {
				t.Errorf("stored = %+v", stored)
			}
		})
	}
}

func TestSubmitReview_StoreError(t *testing.T) {
	boom := errors.New("validation failed: rating")
	uc := NewReviewUseCase(&fakeReviewRepo{err: boom}, log.DefaultLogger)

	_, err := uc.Submit(context.Background(), "c1", &SubmitReview{UserID: "u1", Rating: 11})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrInvalidReview) {
		t.Error("store failure reported as invalid request")
	}
}
