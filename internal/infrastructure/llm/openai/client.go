// Package openai talks to an OpenAI-style completion and embedding API. The
// core treats it as an opaque collaborator: prompts, temperature and output
// caps go in, completion text comes out.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	apiKey     string
	chatModel  string
	embedModel string
	httpClient *http.Client
	exec       *resilience.Executor
}

func New(baseURL, apiKey, chatModel, embedModel string, exec *resilience.Executor) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		chatModel:  chatModel,
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		exec:       exec,
	}
}

type Generator struct {
	client *Client
}

func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// Generate runs one synchronous completion. Generation is single-attempt:
// failures propagate to the action boundary rather than being retried.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	body := map[string]any{
		"model": g.client.chatModel,
		"messages": []map[string]string{
			{"role": "user", "content": req.Prompt},
		},
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := g.client.postJSON(ctx, "/chat/completions", body, &response, "generate"); err != nil {
		return "", domain.WrapError(domain.ErrBackend, "generate", err)
	}
	if len(response.Choices) == 0 {
		return "", domain.WrapError(domain.ErrBackend, "generate", fmt.Errorf("empty choices in completion response"))
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

type Embedder struct {
	client *Client
}

func NewEmbedder(client *Client) *Embedder {
	return &Embedder{client: client}
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body := map[string]any{
		"model": e.client.embedModel,
		"input": texts,
	}

	var response struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	call := func(ctx context.Context) error {
		return e.client.postJSON(ctx, "/embeddings", body, &response, "embed")
	}
	if err := e.client.execute(ctx, "embed", call); err != nil {
		return nil, wrapTemporaryIfNeeded("embed", err)
	}
	if len(response.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings/input mismatch: %d/%d", len(response.Data), len(texts))
	}

	sort.Slice(response.Data, func(i, j int) bool {
		return response.Data[i].Index < response.Data[j].Index
	})
	vectors := make([][]float32, len(response.Data))
	for i, item := range response.Data {
		vectors[i] = item.Embedding
	}
	return vectors, nil
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}
	return vectors[0], nil
}

func (c *Client) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	if c.exec == nil {
		return fn(ctx)
	}
	return c.exec.Execute(ctx, operation, fn, classifyAPIError)
}
