// Package retrieval embeds a query and finds the most similar stored texts
// in one corpus.
package retrieval

import (
	"context"
	"fmt"
)

// Service retrieves the top-K most similar texts from a single corpus.
// The pipeline wires one instance per corpus.
type Service struct {
	embed   Embedder
	querier CorpusQuerier
	corpus  string
	topK    int
}

// New creates a retriever bound to one corpus.
func New(embed Embedder, querier CorpusQuerier, corpus string, topK int) *Service {
	return &Service{embed: embed, querier: querier, corpus: corpus, topK: topK}
}

// MostSimilar embeds the query text and returns up to topK stored texts,
// most similar first. An empty corpus yields an empty slice, not an error.
func (s *Service) MostSimilar(ctx context.Context, text string) ([]string, error) {
	emb, err := s.embed.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	texts, err := s.querier.Query(ctx, s.corpus, emb.Embedding, s.topK)
	if err != nil {
		return nil, fmt.Errorf("query corpus %s: %w", s.corpus, err)
	}
	return texts, nil
}
