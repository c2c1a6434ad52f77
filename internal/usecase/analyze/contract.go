package analyze

import (
	"context"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

// TextExtractor turns an uploaded PDF into plain text.
type TextExtractor func(data []byte) (string, error)

// ContactScanner scrapes contact details from resume text.
type ContactScanner interface {
	Details(text string) domain.ResumeDetails
}

// Ingestor stores resume text into the resume corpus.
type Ingestor interface {
	Ingest(ctx context.Context, text string) error
}

// Retriever finds the most similar stored texts for a query.
type Retriever interface {
	MostSimilar(ctx context.Context, text string) ([]string, error)
}

// PromptComposer builds the two generation prompts.
type PromptComposer interface {
	Suggestions(resumeText, jobDescription string, similarResumes, bestPractices []string) string
	Scores(resumeText string) string
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ScoreParser extracts the category scores from generated text.
type ScoreParser interface {
	Parse(text string) domain.ScoreCard
}
