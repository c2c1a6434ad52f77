package domain

import "context"

// Generator is the generative-model contract: one prompt in, raw text out.
// The two pipeline generations (suggestions, scores) are independent calls
// with no shared conversational state.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
