package retrieval

import (
	"context"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// CorpusQuerier answers nearest-neighbor queries over a named corpus.
type CorpusQuerier interface {
	Query(ctx context.Context, corpus string, vector []float32, topN int) ([]string, error)
}
