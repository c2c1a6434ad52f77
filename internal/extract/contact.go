package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`\b\d{10,12}\b`)
)

// NameHeuristic guesses the candidate's name from resume text.
// Returns "" when no guess can be made.
type NameHeuristic func(text string) string

// ContactExtractor scans resume text for name, email, and phone.
// The name heuristic is deliberately replaceable: its accuracy is not this
// system's value proposition.
type ContactExtractor struct {
	nameFn NameHeuristic
}

// NewContactExtractor creates an extractor with the default name heuristic.
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{nameFn: FirstTwoCapitalizedTokens}
}

// WithNameHeuristic replaces the name heuristic.
func (e *ContactExtractor) WithNameHeuristic(fn NameHeuristic) *ContactExtractor {
	if fn != nil {
		e.nameFn = fn
	}
	return e
}

// Details returns best-effort contact details; each field is nil when absent.
func (e *ContactExtractor) Details(text string) domain.ResumeDetails {
	var details domain.ResumeDetails

	if email := emailRegex.FindString(text); email != "" {
		details.Email = &email
	}
	if phone := phoneRegex.FindString(text); phone != "" {
		details.Phone = &phone
	}
	if name := e.nameFn(text); name != "" {
		details.Name = &name
	}

	return details
}

// FirstTwoCapitalizedTokens is the default name heuristic: the first two
// whitespace-separated tokens, if both start with an uppercase letter.
func FirstTwoCapitalizedTokens(text string) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return ""
	}
	if startsUpper(words[0]) && startsUpper(words[1]) {
		return words[0] + " " + words[1]
	}
	return ""
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
