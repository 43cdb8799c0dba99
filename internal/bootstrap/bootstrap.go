package bootstrap

import (
	"time"

	"github.com/The-Apinke/sumpro/internal/config"
	"github.com/The-Apinke/sumpro/internal/core/ports"
	"github.com/The-Apinke/sumpro/internal/core/usecase"
	"github.com/The-Apinke/sumpro/internal/infrastructure/chunking"
	"github.com/The-Apinke/sumpro/internal/infrastructure/extractor/pdfdoc"
	"github.com/The-Apinke/sumpro/internal/infrastructure/llm/openai"
	"github.com/The-Apinke/sumpro/internal/infrastructure/resilience"
	"github.com/The-Apinke/sumpro/internal/infrastructure/vector/memindex"
	"github.com/The-Apinke/sumpro/internal/observability/metrics"
	"github.com/The-Apinke/sumpro/internal/quota"
	"github.com/The-Apinke/sumpro/internal/session"
)

type App struct {
	Config config.Config

	Sessions  ports.SessionStore
	AnalyzeUC ports.DocumentAnalyzer
	WidgetUC  ports.WidgetGenerator
	ChatUC    ports.ConversationService

	Metrics *metrics.HTTPServerMetrics
}

func New(cfg config.Config, service string) *App {
	executor := resilience.NewExecutor(resilience.DefaultConfig())
	client := openai.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIChatModel, cfg.OpenAIEmbedModel, executor)
	embedder := openai.NewEmbedder(client)
	generator := openai.NewGenerator(client)

	limiter := quota.NewLimiter(cfg.MaxDailyAnalyses, 24*time.Hour)
	sessions := session.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour)
	extractor := pdfdoc.New()
	chunker := chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	indexer := memindex.NewBuilder(embedder)
	summarizer := usecase.NewSummarizer(generator)

	analyzeUC := usecase.NewAnalyzeUseCase(limiter, extractor, chunker, indexer, summarizer, sessions)
	widgetUC := usecase.NewWidgetUseCase(generator)
	chatUC := usecase.NewChatUseCase(generator, summarizer)

	return &App{
		Config:    cfg,
		Sessions:  sessions,
		AnalyzeUC: analyzeUC,
		WidgetUC:  widgetUC,
		ChatUC:    chatUC,
		Metrics:   metrics.NewHTTPServerMetrics(service),
	}
}
