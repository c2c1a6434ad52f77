package domain

import "errors"

var (
	// ErrMissingResume signals an analyze request without a resume file.
	ErrMissingResume = errors.New("resume file is required")
	// ErrMissingJobDescription signals an analyze request without a job description.
	ErrMissingJobDescription = errors.New("job description is required")
	// ErrExtractionFailed signals a document that could not be parsed into text.
	ErrExtractionFailed = errors.New("document text extraction failed")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationProviderError signals a generative-model failure or empty response.
	ErrGenerationProviderError = errors.New("generation provider error")
)
