package retrieval

import (
	"context"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

type mockEmbedder struct {
	embedFunc func(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	return m.embedFunc(ctx, text)
}

type mockQuerier struct {
	queryFunc func(ctx context.Context, corpus string, vector []float32, topN int) ([]string, error)
}

func (m *mockQuerier) Query(ctx context.Context, corpus string, vector []float32, topN int) ([]string, error) {
	return m.queryFunc(ctx, corpus, vector, topN)
}
