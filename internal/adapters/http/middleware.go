package httpadapter

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type requestIDContextKey struct{}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

// requestLogMiddleware tags each request with an id and emits one access-log
// line when it completes. The user_agent attribute is logged deliberately:
// it is the same signal the analysis quota keys identities on, so a quota
// complaint can be traced back to the requests that consumed the allowance.
func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		r = r.WithContext(context.WithValue(r.Context(), requestIDContextKey{}, requestID))
		w.Header().Set(requestIDHeader, requestID)

		tracked := &trackedResponse{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(tracked, r)

		client := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			client = host
		}

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", tracked.status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"bytes", tracked.bytes,
			"client", client,
			"user_agent", r.UserAgent(),
		}

		switch {
		case tracked.status >= 500:
			slog.Error("http_request", attrs...)
		case tracked.status >= 400:
			slog.Warn("http_request", attrs...)
		default:
			slog.Info("http_request", attrs...)
		}
	})
}

// trackedResponse captures status and body size for the access log. Every
// handler in this API writes a small JSON body in one go, so the plain
// ResponseWriter surface is enough; no streaming passthroughs are needed.
type trackedResponse struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *trackedResponse) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *trackedResponse) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
