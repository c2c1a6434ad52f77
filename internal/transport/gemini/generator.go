// Package gemini implements the generation gateway on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/hollis-cloud/resumerag/internal/domain"
	"github.com/hollis-cloud/resumerag/internal/metrics"
)

// Generator sends prompts to a Gemini model and returns the raw text.
// Every call is a fresh single-turn generation: the pipeline's two prompts
// must not share conversational state.
type Generator struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	timeout         time.Duration
	logger          *zap.Logger
}

// Config holds the generation provider settings.
type Config struct {
	APIKey          string
	Model           string
	MaxOutputTokens int
	Timeout         time.Duration
	BaseURL         string // test override
	HTTPClient      *http.Client
	Logger          *zap.Logger
}

// NewGenerator creates a Gemini text generator.
func NewGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Generator{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		timeout:         cfg.Timeout,
		logger:          cfg.Logger,
	}, nil
}

// Generate implements domain.Generator. An empty model response is an error:
// the caller decides how to degrade, not this layer.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var genCfg *genai.GenerateContentConfig
	if g.maxOutputTokens > 0 {
		genCfg = &genai.GenerateContentConfig{MaxOutputTokens: g.maxOutputTokens}
	}

	start := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)

	duration := time.Since(start)

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(g.model, "error").Inc()
		return "", fmt.Errorf("generate content: %w: %w", err, domain.ErrGenerationProviderError)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		metrics.GenerationRequestsTotal.WithLabelValues(g.model, "error").Inc()
		return "", fmt.Errorf("empty generation response: %w", domain.ErrGenerationProviderError)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(g.model, "success").Inc()
	metrics.GenerationRequestDuration.WithLabelValues(g.model).Observe(duration.Seconds())

	return text, nil
}
