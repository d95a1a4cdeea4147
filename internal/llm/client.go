package llm

import (
	"context"
	"fmt"

	"finsight/internal/config"
)

// Supported generation providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Client generates text through a single provider
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewClient builds the client for the configured provider. An empty
// provider falls back to OpenAI.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// GenerateRequest is a provider-agnostic text generation request.
// Instructions carry the system prompt; Input is the user payload.
type GenerateRequest struct {
	Model        string
	Instructions string
	Input        string
}

// GenerateResponse is the outcome of a generation call that reached the
// provider. Err carries an API-level error message (for example a content
// filter or truncation); transport failures are returned as Go errors by
// the client instead.
type GenerateResponse struct {
	ID         string
	Model      string
	OutputText string
	Err        string
}
