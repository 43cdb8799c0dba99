package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	analysesTotal       *prometheus.CounterVec
	analysisDuration    *prometheus.HistogramVec
	documentChunks      *prometheus.HistogramVec
	widgetRequestsTotal *prometheus.CounterVec
	chatRequestsTotal   *prometheus.CounterVec
	quotaDeniedTotal    *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sumpro",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sumpro",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sumpro",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sumpro",
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Total analysis runs by mode and outcome.",
		},
		[]string{"service", "mode", "status"},
	)
	analysisDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sumpro",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "End-to-end analysis pipeline duration in seconds.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"service", "mode"},
	)
	documentChunks := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sumpro",
			Subsystem: "analysis",
			Name:      "document_chunks",
			Help:      "Distribution of chunks produced per analyzed upload.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
		},
		[]string{"service"},
	)
	widgetRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sumpro",
			Subsystem: "widget",
			Name:      "requests_total",
			Help:      "Total widget generations by variant and outcome.",
		},
		[]string{"service", "widget", "status"},
	)
	chatRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sumpro",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total follow-up questions answered by outcome.",
		},
		[]string{"service", "status"},
	)
	quotaDeniedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sumpro",
			Subsystem: "quota",
			Name:      "denied_total",
			Help:      "Total analysis requests denied by the daily quota.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		analysesTotal,
		analysisDuration,
		documentChunks,
		widgetRequestsTotal,
		chatRequestsTotal,
		quotaDeniedTotal,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		analysesTotal:       analysesTotal,
		analysisDuration:    analysisDuration,
		documentChunks:      documentChunks,
		widgetRequestsTotal: widgetRequestsTotal,
		chatRequestsTotal:   chatRequestsTotal,
		quotaDeniedTotal:    quotaDeniedTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/v1/sessions/") {
		rest := strings.TrimPrefix(path, "/v1/sessions/")
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return "/v1/sessions/{session_id}" + rest[idx:]
		}
		return "/v1/sessions/{session_id}"
	}
	return path
}

func (m *HTTPServerMetrics) RecordAnalysis(service, mode, status string, chunks int, duration time.Duration) {
	if mode == "" {
		mode = "unknown"
	}
	m.analysesTotal.WithLabelValues(service, mode, status).Inc()
	if status == "ok" {
		m.analysisDuration.WithLabelValues(service, mode).Observe(duration.Seconds())
		m.documentChunks.WithLabelValues(service).Observe(float64(chunks))
	}
}

func (m *HTTPServerMetrics) RecordWidgetRequest(service, widget, status string) {
	if widget == "" {
		widget = "unknown"
	}
	m.widgetRequestsTotal.WithLabelValues(service, widget, status).Inc()
}

func (m *HTTPServerMetrics) RecordChatRequest(service, status string) {
	m.chatRequestsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordQuotaDenied(service string) {
	m.quotaDeniedTotal.WithLabelValues(service).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
