package ingest

import (
	"context"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

// Embedder vectorizes document text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// CorpusStore persists documents into a named corpus.
type CorpusStore interface {
	Has(ctx context.Context, corpus, id string) (bool, error)
	Upsert(ctx context.Context, corpus string, doc domain.StoredDocument) error
}
