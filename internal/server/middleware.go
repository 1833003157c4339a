package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-ID"

// RequestIDFilter reuses an upstream X-Request-ID or generates a new one, and
// stores it on the request context.
func RequestIDFilter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the id stored by RequestIDFilter.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID is a log.Valuer for the current request id.
func RequestID() log.Valuer {
	return func(ctx context.Context) interface{} {
		return RequestIDFromContext(ctx)
	}
}

// MetricsMiddleware records request latency per operation and status code.
func MetricsMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			operation := "unknown"
			if tr, ok := transport.FromServerContext(ctx); ok {
				operation = tr.Operation()
			}

			start := time.Now()
			reply, err := handler(ctx, req)

			code := http.StatusOK
			if err != nil {
				code = int(errors.FromError(err).Code)
			}
			metrics.APIRequestDuration.
				WithLabelValues(operation, strconv.Itoa(code)).
				Observe(time.Since(start).Seconds())

			return reply, err
		}
	}
}
