package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	apiKeys []string
	model   string

	mu      sync.Mutex
	current int
}

// NewGeminiCompleter creates a Completer over the Gemini API that rotates
// through the supplied keys when one is rate limited.
func NewGeminiCompleter(apiKeys []string, model string) (Completer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one gemini api key is required")
	}
	return &geminiCompleter{
		apiKeys: apiKeys,
		model:   model,
	}, nil
}

func (c *geminiCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	var lastErr error
	for range c.apiKeys {
		key := c.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotate()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(full), nil)
		if err != nil {
			if isQuotaError(err) {
				lastErr = err
				c.rotate()
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", fmt.Errorf("empty response from gemini")
		}

		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("all gemini api keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (c *geminiCompleter) nextKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.current]
}

func (c *geminiCompleter) rotate() {
	c.mu.Lock()
	c.current = (c.current + 1) % len(c.apiKeys)
	c.mu.Unlock()
}
