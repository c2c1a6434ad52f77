package analyze

import (
	"context"
	"sync"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

type mockContacts struct {
	detailsFunc func(text string) domain.ResumeDetails
}

func (m *mockContacts) Details(text string) domain.ResumeDetails {
	return m.detailsFunc(text)
}

type mockIngestor struct {
	ingestFunc func(ctx context.Context, text string) error
}

func (m *mockIngestor) Ingest(ctx context.Context, text string) error {
	return m.ingestFunc(ctx, text)
}

type mockRetriever struct {
	mostSimilarFunc func(ctx context.Context, text string) ([]string, error)
}

func (m *mockRetriever) MostSimilar(ctx context.Context, text string) ([]string, error) {
	return m.mostSimilarFunc(ctx, text)
}

// mockGenerator records prompts; it is called from two goroutines.
type mockGenerator struct {
	mu           sync.Mutex
	prompts      []string
	generateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.generateFunc(ctx, prompt)
}

func (m *mockGenerator) seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func noopContacts() *mockContacts {
	return &mockContacts{detailsFunc: func(string) domain.ResumeDetails {
		return domain.ResumeDetails{}
	}}
}

func noopIngestor() *mockIngestor {
	return &mockIngestor{ingestFunc: func(context.Context, string) error { return nil }}
}

func emptyRetriever() *mockRetriever {
	return &mockRetriever{mostSimilarFunc: func(context.Context, string) ([]string, error) {
		return nil, nil
	}}
}
