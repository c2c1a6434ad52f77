package ingest

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

type mockCorpusStore struct {
	hasFunc    func(ctx context.Context, corpus, id string) (bool, error)
	upsertFunc func(ctx context.Context, corpus string, doc domain.StoredDocument) error
}

func (m *mockCorpusStore) Has(ctx context.Context, corpus, id string) (bool, error) {
	return m.hasFunc(ctx, corpus, id)
}

func (m *mockCorpusStore) Upsert(ctx context.Context, corpus string, doc domain.StoredDocument) error {
	return m.upsertFunc(ctx, corpus, doc)
}
