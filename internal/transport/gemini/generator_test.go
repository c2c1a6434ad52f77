package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hollis-cloud/resumerag/internal/domain"
	"github.com/hollis-cloud/resumerag/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterProviderMetrics()
	os.Exit(m.Run())
}

func newGenerator(t *testing.T, server *httptest.Server) *Generator {
	t.Helper()
	gen, err := NewGenerator(context.Background(), &Config{
		APIKey:     "test-key",
		Model:      "test-model",
		Timeout:    5 * time.Second,
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func TestGenerate_ReturnsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "**Formatting**\n\n* Use bullet points."}]}}
			]
		}`))
	}))
	defer server.Close()

	gen := newGenerator(t, server)

	text, err := gen.Generate(context.Background(), "analyze this resume")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "**Formatting**\n\n* Use bullet points." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestGenerate_EmptyResponseIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": ""}]}}]}`))
	}))
	defer server.Close()

	gen := newGenerator(t, server)

	_, err := gen.Generate(context.Background(), "analyze this resume")
	if err == nil {
		t.Fatal("expected error for empty response")
	}
	if !errors.Is(err, domain.ErrGenerationProviderError) {
		t.Errorf("expected ErrGenerationProviderError, got %v", err)
	}
}

func TestGenerate_APIErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"code": 500, "message": "internal"}}`))
	}))
	defer server.Close()

	gen := newGenerator(t, server)

	_, err := gen.Generate(context.Background(), "analyze this resume")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !errors.Is(err, domain.ErrGenerationProviderError) {
		t.Errorf("expected ErrGenerationProviderError, got %v", err)
	}
}

func TestNewGenerator_RequiresModel(t *testing.T) {
	_, err := NewGenerator(context.Background(), &Config{APIKey: "k"})
	if err == nil {
		t.Fatal("expected error for missing model")
	}
}
