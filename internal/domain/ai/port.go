package ai

import "context"

// Generator port: one blocking text completion per call. The prompt is
// plain UTF-8 text; the reply is whatever free-form text the provider returns.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
