package generation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Options struct {
	Provider string
	APIURL   string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewGenerator picks the generator for opts.Provider. The generation
// service ("api") is the default.
func NewGenerator(ctx context.Context, opts Options) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "api"
	}

	switch provider {
	case "api":
		return NewAPIClient(opts.APIURL, opts.Timeout), nil
	case "openai":
		return NewOpenAIGenerator(opts.APIKey, opts.Model, opts.BaseURL, opts.Timeout), nil
	case "gemini":
		if strings.TrimSpace(opts.APIKey) == "" {
			return nil, fmt.Errorf("gemini api key is required")
		}
		return NewGeminiGenerator(ctx, opts.APIKey, opts.Model)
	case "ollama":
		return NewOllamaGenerator(opts.Model, opts.BaseURL, opts.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", opts.Provider)
	}
}
