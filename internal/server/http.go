package server

import (
	"net/http"
	"time"

	_ "github.com/Ikbal-hand/streaming-api-pdt/internal/docs" // swagger docs
	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/service"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/goccy/go-json"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// Banner is served on the root path.
const Banner = "Streaming Metadata Service API is running! Go to /api-docs for documentation."

// responseEncoder writes string replies as plain text and everything else as JSON.
func responseEncoder(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if v == nil {
		return nil
	}
	if text, ok := v.(string); ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte(text))
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}

// errorEncoder renders client errors as {"message"} and server errors as
// {"error","details"}, where details is the raw cause unless hidden.
func errorEncoder(hideDetails bool) khttp.EncodeErrorFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		se := errors.FromError(err)
		code := int(se.Code)

		var body interface{}
		if code >= http.StatusInternalServerError {
			details := se.Message
			if hideDetails {
				details = ""
			}
			body = map[string]string{
				"error":   http.StatusText(http.StatusInternalServerError),
				"details": details,
			}
		} else {
			body = map[string]string{"message": se.Message}
		}

		data, mErr := json.Marshal(body)
		if mErr != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write(data)
	}
}

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, contentSvc *service.ContentService, logger log.Logger) *khttp.Server {
	filters := []khttp.FilterFunc{
		RequestIDFilter,
		cors.Handler(corsOptions(c.Cors)),
	}
	if c.RateLimit != nil && c.RateLimit.RequestsPerMinute > 0 {
		filters = append(filters, httprate.LimitByIP(c.RateLimit.RequestsPerMinute, time.Minute))
	}

	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			MetricsMiddleware(),
		),
		khttp.Filter(filters...),
		khttp.ResponseEncoder(responseEncoder),
		khttp.ErrorEncoder(errorEncoder(c.HideErrorDetails)),
		// zero disables the per-request deadline
		khttp.Timeout(0),
	}
	if c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if d := c.Http.Timeout.AsDuration(); d > 0 {
			opts = append(opts, khttp.Timeout(d))
		}
	}
	srv := khttp.NewServer(opts...)

	service.RegisterContentHTTPServer(srv, contentSvc)

	srv.Handle("/metrics", promhttp.Handler())
	srv.HandlePrefix("/api-docs/", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))
	srv.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(Banner))
	})
	return srv
}

func corsOptions(c *conf.Cors) cors.Options {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}
	if c == nil {
		return opts
	}
	if len(c.AllowedOrigins) > 0 {
		opts.AllowedOrigins = c.AllowedOrigins
	}
	if len(c.AllowedMethods) > 0 {
		opts.AllowedMethods = c.AllowedMethods
	}
	if len(c.AllowedHeaders) > 0 {
		opts.AllowedHeaders = c.AllowedHeaders
	}
	return opts
}
