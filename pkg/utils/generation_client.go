package utils

import "context"

// GenerationClientInterface is the single-call contract the horoscope
// pipeline uses: one prompt in, one text blob out. Implementations
// return "" (not an error) when the provider answers with no content.
type GenerationClientInterface interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
