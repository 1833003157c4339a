package service

import (
	"context"
	"net/http"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// APIPrefix is the versioned mount point of the content API.
const APIPrefix = "/api/v1/content"

const (
	OperationListContentIDs  = "/content.v1.ContentService/ListContentIDs"
	OperationListUserIDs     = "/content.v1.ContentService/ListUserIDs"
	OperationGetTrending     = "/content.v1.ContentService/GetTrending"
	OperationGetMetadata     = "/content.v1.ContentService/GetMetadata"
	OperationListReviews     = "/content.v1.ContentService/ListReviews"
	OperationGetDetails      = "/content.v1.ContentService/GetDetails"
	OperationGetCast         = "/content.v1.ContentService/GetCast"
	OperationIncrementViews  = "/content.v1.ContentService/IncrementViews"
	OperationAddReview       = "/content.v1.ContentService/AddReview"
	OperationGetWatchHistory = "/content.v1.ContentService/GetWatchHistory"
)

// RegisterContentHTTPServer mounts the content routes. Static paths are
// registered before the {id} catch-alls so they win the match.
func RegisterContentHTTPServer(s *khttp.Server, svc *ContentService) {
	r := s.Route(APIPrefix)

	r.GET("/ids", handle(OperationListContentIDs, http.StatusOK, bindNone, svc.ListContentIDs))
	r.GET("/users/ids", handle(OperationListUserIDs, http.StatusOK, bindNone, svc.ListUserIDs))
	r.GET("/trending/daily", handle(OperationGetTrending, http.StatusOK, bindNone, svc.GetTrending))
	r.GET("/users/{userId}/watch-history", handle(OperationGetWatchHistory, http.StatusOK, bindUser, svc.GetWatchHistory))

	r.GET("/{id}", handle(OperationGetMetadata, http.StatusOK, bindContent, svc.GetMetadata))
	r.GET("/{id}/reviews", handle(OperationListReviews, http.StatusOK, bindContent, svc.ListReviews))
	r.GET("/{id}/details", handle(OperationGetDetails, http.StatusOK, bindContent, svc.GetDetails))
	r.GET("/{id}/cast", handle(OperationGetCast, http.StatusOK, bindContent, svc.GetCast))
	r.POST("/{id}/views/increment", handle(OperationIncrementViews, http.StatusOK, bindContent, svc.IncrementViews))
	r.POST("/{id}/reviews", handle(OperationAddReview, http.StatusCreated, bindReview, svc.AddReview))
}

// handle adapts a service method to a kratos route so that server middleware
// (recovery, logging, metrics) wraps every call.
func handle[Req any, Reply any](
	operation string,
	code int,
	bind func(khttp.Context, *Req) error,
	call func(context.Context, *Req) (Reply, error),
) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in Req
		if err := bind(ctx, &in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(code, out)
	}
}

func bindNone(khttp.Context, *struct{}) error { return nil }

func bindContent(ctx khttp.Context, in *ContentRequest) error {
	in.ID = ctx.Vars().Get("id")
	return nil
}

func bindUser(ctx khttp.Context, in *UserRequest) error {
	in.UserID = ctx.Vars().Get("userId")
	return nil
}

func bindReview(ctx khttp.Context, in *AddReviewRequest) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	in.ContentID = ctx.Vars().Get("id")
	return nil
}
