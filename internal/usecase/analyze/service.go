// Package analyze orchestrates the full resume-analysis pipeline: extract,
// ingest, retrieve, generate, parse, assemble.
package analyze

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hollis-cloud/resumerag/internal/domain"
	"github.com/hollis-cloud/resumerag/internal/logger"
)

// SuggestionsUnavailable is returned in place of suggestions when the
// generation provider fails; the scores half still answers independently.
const SuggestionsUnavailable = "Suggestions are temporarily unavailable. Please try again later."

// Service runs one analysis per request. Only invalid input and extraction
// failures surface as errors; degraded dependencies (store, providers) are
// logged and answered around.
type Service struct {
	extract   TextExtractor
	contacts  ContactScanner
	ingest    Ingestor
	resumes   Retriever
	practices Retriever
	prompts   PromptComposer
	generate  Generator
	scores    ScoreParser
}

// New wires the pipeline. resumes retrieves from the resume corpus,
// practices from the best-practices corpus.
func New(
	extract TextExtractor, contacts ContactScanner,
	ingest Ingestor, resumes, practices Retriever,
	prompts PromptComposer, generate Generator, scores ScoreParser,
) *Service {
	return &Service{
		extract:   extract,
		contacts:  contacts,
		ingest:    ingest,
		resumes:   resumes,
		practices: practices,
		prompts:   prompts,
		generate:  generate,
		scores:    scores,
	}
}

// Analyze validates the inputs and runs the pipeline. The returned error is
// one of the domain sentinels (missing input, extraction failure); every
// later stage degrades instead of failing the request.
func (s *Service) Analyze(ctx context.Context, resumePDF []byte, jobDescription string) (domain.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	if len(resumePDF) == 0 {
		return domain.AnalysisResult{}, domain.ErrMissingResume
	}
	if strings.TrimSpace(jobDescription) == "" {
		return domain.AnalysisResult{}, domain.ErrMissingJobDescription
	}

	resumeText, err := s.extract(resumePDF)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	// Best-effort: the analysis must answer even when the store is down.
	if err := s.ingest.Ingest(ctx, resumeText); err != nil {
		log.Warn("resume ingestion failed", zap.Error(err))
	}

	similarResumes := s.retrieve(ctx, log, s.resumes, resumeText, "resumes")
	bestPractices := s.retrieve(ctx, log, s.practices, jobDescription, "best_practices")

	suggestionsPrompt := s.prompts.Suggestions(resumeText, jobDescription, similarResumes, bestPractices)
	scoresPrompt := s.prompts.Scores(resumeText)

	var (
		wg             sync.WaitGroup
		suggestions    string
		suggestionsErr error
		scoresText     string
		scoresErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		suggestions, suggestionsErr = s.generate.Generate(ctx, suggestionsPrompt)
	}()
	go func() {
		defer wg.Done()
		scoresText, scoresErr = s.generate.Generate(ctx, scoresPrompt)
	}()
	wg.Wait()

	if suggestionsErr != nil {
		log.Warn("suggestions generation failed", zap.Error(suggestionsErr))
		suggestions = SuggestionsUnavailable
	}

	var card domain.ScoreCard
	if scoresErr != nil {
		log.Warn("scores generation failed", zap.Error(scoresErr))
	} else {
		card = s.scores.Parse(scoresText)
	}

	return domain.AnalysisResult{
		ResumeDetails: s.contacts.Details(resumeText),
		Suggestions:   suggestions,
		Scores:        card,
	}, nil
}

// retrieve degrades to no context on failure so prompts fall back to the
// documented sentences.
func (s *Service) retrieve(ctx context.Context, log *zap.Logger, r Retriever, text, corpus string) []string {
	results, err := r.MostSimilar(ctx, text)
	if err != nil {
		log.Warn("retrieval failed", zap.String("corpus", corpus), zap.Error(err))
		return nil
	}
	return results
}
