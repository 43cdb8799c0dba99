package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogMiddlewareAssignsRequestID(t *testing.T) {
	var seenID string
	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := requestLogMiddleware(base)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if seenID == "" {
		t.Fatal("expected a generated request id in the handler context")
	}
	if got := res.Header().Get(requestIDHeader); got != seenID {
		t.Fatalf("response header id %q does not match context id %q", got, seenID)
	}
}

func TestRequestLogMiddlewareKeepsProvidedRequestID(t *testing.T) {
	var seenID string
	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := requestLogMiddleware(base)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-abc-123")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if seenID != "req-abc-123" {
		t.Fatalf("expected the client-provided id to be kept, got %q", seenID)
	}
	if got := res.Header().Get(requestIDHeader); got != "req-abc-123" {
		t.Fatalf("unexpected response header id %q", got)
	}
}

func TestTrackedResponseRecordsStatusAndBytes(t *testing.T) {
	base := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"teapot"}`))
	})
	handler := requestLogMiddleware(base)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if res.Code != http.StatusTeapot {
		t.Fatalf("status must pass through, got %d", res.Code)
	}
	if res.Body.Len() == 0 {
		t.Fatal("body must pass through")
	}
}
