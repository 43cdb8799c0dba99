package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
	"github.com/The-Apinke/sumpro/internal/observability/metrics"
)

const maxUploadBytes = 64 << 20

type Router struct {
	service   string
	analyzeUC ports.DocumentAnalyzer
	widgetUC  ports.WidgetGenerator
	chatUC    ports.ConversationService
	sessions  ports.SessionStore
	metrics   *metrics.HTTPServerMetrics

	rateLimitRPS   int
	rateLimitBurst int
	maxInFlight    int
}

func NewRouter(
	service string,
	analyzeUC ports.DocumentAnalyzer,
	widgetUC ports.WidgetGenerator,
	chatUC ports.ConversationService,
	sessions ports.SessionStore,
	serverMetrics *metrics.HTTPServerMetrics,
	rateLimitRPS, rateLimitBurst, maxInFlight int,
) *Router {
	return &Router{
		service:        service,
		analyzeUC:      analyzeUC,
		widgetUC:       widgetUC,
		chatUC:         chatUC,
		sessions:       sessions,
		metrics:        serverMetrics,
		rateLimitRPS:   rateLimitRPS,
		rateLimitBurst: rateLimitBurst,
		maxInFlight:    maxInFlight,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", rt.healthz)
	mux.Handle("GET /metrics", rt.metrics.Handler())
	mux.HandleFunc("POST /v1/analyses", rt.analyze)
	mux.HandleFunc("GET /v1/sessions/{session_id}", rt.getSession)
	mux.HandleFunc("DELETE /v1/sessions/{session_id}", rt.deleteSession)
	mux.HandleFunc("POST /v1/sessions/{session_id}/widgets", rt.generateWidget)
	mux.HandleFunc("POST /v1/sessions/{session_id}/messages", rt.postMessage)

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.maxInFlight, 50*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	handler = rt.metrics.Middleware(rt.service, handler)
	handler = requestLogMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type sessionResponse struct {
	SessionID  string           `json:"session_id"`
	Mode       domain.ModeName  `json:"mode"`
	Summary    string           `json:"summary"`
	ChunkCount int              `json:"chunk_count"`
	Widgets    []domain.Widget  `json:"widgets"`
	Messages   []domain.Message `json:"messages"`
	CreatedAt  time.Time        `json:"created_at"`
}

func newSessionResponse(sess *domain.Session) sessionResponse {
	return sessionResponse{
		SessionID:  sess.ID,
		Mode:       sess.Mode,
		Summary:    sess.Summary,
		ChunkCount: len(sess.Chunks),
		Widgets:    sess.Mode.EnabledWidgets(),
		Messages:   sess.Messages,
		CreatedAt:  sess.CreatedAt,
	}
}

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart form is required"})
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	mode, err := domain.ParseModeName(r.FormValue("mode"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mode must be one of: professional, tech, digest"})
		return
	}

	files := r.MultipartForm.File["files"]
	docs, closers, err := openUploads(files)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
		return
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	start := time.Now()
	result, err := rt.analyzeUC.Analyze(r.Context(), domain.AnalyzeRequest{
		Identity:  r.UserAgent(),
		Mode:      mode,
		Documents: docs,
	})
	if err != nil {
		if domain.IsKind(err, domain.ErrQuotaExceeded) {
			rt.metrics.RecordQuotaDenied(rt.service)
		}
		rt.metrics.RecordAnalysis(rt.service, string(mode), "error", 0, 0)
		rt.writeError(r, w, "analyze", err)
		return
	}
	rt.metrics.RecordAnalysis(rt.service, string(mode), "ok", len(result.Session.Chunks), time.Since(start))

	response := struct {
		sessionResponse
		QuotaMessage string `json:"quota_message"`
	}{
		sessionResponse: newSessionResponse(result.Session),
		QuotaMessage:    result.QuotaMessage,
	}
	writeJSON(w, http.StatusCreated, response)
}

func openUploads(files []*multipart.FileHeader) ([]io.Reader, []io.Closer, error) {
	docs := make([]io.Reader, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return nil, nil, err
		}
		docs = append(docs, f)
		closers = append(closers, f)
	}
	return docs, closers, nil
}

func (rt *Router) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := rt.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (rt *Router) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session_id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "session id is required"})
		return
	}
	rt.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) generateWidget(w http.ResponseWriter, r *http.Request) {
	sess, ok := rt.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Widget string `json:"widget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	widget, err := domain.ParseWidget(req.Widget)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "widget must be one of: email, questions, concepts, structure"})
		return
	}
	if !sess.Mode.Supports(widget) {
		rt.metrics.RecordWidgetRequest(rt.service, string(widget), "unsupported")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "widget " + string(widget) + " is not available in mode " + string(sess.Mode),
		})
		return
	}

	result, err := rt.widgetUC.Generate(r.Context(), sess, widget)
	if err != nil {
		rt.metrics.RecordWidgetRequest(rt.service, string(widget), "error")
		rt.writeError(r, w, "generate widget", err)
		return
	}
	rt.metrics.RecordWidgetRequest(rt.service, string(widget), "ok")
	rt.sessions.Put(sess)

	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) postMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := rt.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	answer, err := rt.chatUC.Answer(r.Context(), sess, req.Question)
	if err != nil {
		rt.metrics.RecordChatRequest(rt.service, "error")
		rt.writeError(r, w, "answer question", err)
		return
	}
	rt.metrics.RecordChatRequest(rt.service, "ok")
	rt.sessions.Put(sess)

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (rt *Router) lookupSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	id := r.PathValue("session_id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "session id is required"})
		return nil, false
	}
	sess, err := rt.sessions.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func (rt *Router) writeError(r *http.Request, w http.ResponseWriter, operation string, err error) {
	status := mapErrorToHTTPStatus(err)
	if status >= 500 {
		slog.Error(operation+"_failed", "request_id", requestIDFromContext(r.Context()), "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
