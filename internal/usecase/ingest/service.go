// Package ingest adds documents to a corpus, keyed by content hash so
// re-ingesting the same text is a no-op.
package ingest

import (
	"context"
	"fmt"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

// Service ingests text documents into a single corpus.
type Service struct {
	embed  Embedder
	store  CorpusStore
	corpus string
}

// New creates an ingestor bound to one corpus.
func New(embed Embedder, store CorpusStore, corpus string) *Service {
	return &Service{embed: embed, store: store, corpus: corpus}
}

// Ingest stores the text under its content-hash id. A document already in
// the corpus is skipped without re-embedding.
func (s *Service) Ingest(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	id := domain.DocumentID(text)
	ok, err := s.store.Has(ctx, s.corpus, id)
	if err != nil {
		return fmt.Errorf("check document %s: %w", id, err)
	}
	if ok {
		return nil
	}

	emb, err := s.embed.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed document: %w", err)
	}

	doc := domain.StoredDocument{ID: id, Vector: emb.Embedding, Text: text}
	if err := s.store.Upsert(ctx, s.corpus, doc); err != nil {
		return fmt.Errorf("upsert document %s: %w", id, err)
	}
	return nil
}
