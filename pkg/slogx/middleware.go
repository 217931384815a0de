package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quorumhq/rollcall/pkg/idx"
)

// HTTPMiddleware tags every request with an id, injects a request-scoped
// logger into the context, and emits one access-log line per request.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Honor an upstream X-Request-ID, mint one otherwise.
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}

			logger := base.With(
				slog.String("req_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(WithContext(r.Context(), logger)))

			logger.Info("http_request",
				slog.Int("status", rec.status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("user_agent", r.UserAgent()),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
