package advisor

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Client asks the Gemini API for destination suggestions.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Client using the GEMINI_API_KEY env var.
func NewClient(ctx context.Context, model string) (*Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{client: c, model: model}, nil
}

// Suggest sends the traveller's query to Gemini and returns the raw
// response text. The system instruction pins the two-line response format
// consumed by ParseSuggestion, but the model is not guaranteed to honor
// it; callers must treat parse failures as a normal outcome.
func (c *Client) Suggest(ctx context.Context, query string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(query),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		})
	if err != nil {
		return "", fmt.Errorf("generating suggestion: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return text, nil
}
