package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	requestTimeout = 60 * time.Second
)

// Gemini implements Client on top of the Google GenAI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini client. An empty model selects the default.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Complete asks the model for a JSON response. The keyword generator expects
// raw JSON, so the MIME type pins the output format.
func (g *Gemini) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.7)),
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("llm: empty completion from %s", g.model)
	}
	return text, nil
}
