// Package llm wraps the Gemini API behind a small completion interface so
// callers (and their tests) never depend on the SDK directly.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no LLM backend is configured.
var ErrUnavailable = errors.New("llm: no backend configured")

// Client produces a single text completion for a system prompt and a user
// prompt. Implementations must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Disabled is a Client that always reports ErrUnavailable. Used when no API
// key is configured so callers fall through to template generation.
type Disabled struct{}

func (Disabled) Complete(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}
