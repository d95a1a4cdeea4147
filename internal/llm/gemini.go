package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a client backed by the Gemini API.
// baseURL may be empty to use the public endpoint.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: "v1",
			BaseURL:    baseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{client: client}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	// Gemini has no separate instructions channel on v1, so the system
	// prompt is prepended to the user input.
	prompt := req.Input
	if req.Instructions != "" {
		prompt = req.Instructions + "\n\n" + req.Input
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	out := &GenerateResponse{
		ID:         resp.ResponseID,
		Model:      resp.ModelVersion,
		OutputText: resp.Text(),
	}

	if out.OutputText == "" {
		out.Err = "empty response from model"
	}

	return out, nil
}
