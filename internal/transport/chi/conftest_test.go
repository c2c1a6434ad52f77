package chi

import (
	"context"

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

type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generateFunc(ctx, prompt)
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

type mockChecker struct{ err error }

func (m *mockChecker) HealthCheck(context.Context) error { return m.err }
