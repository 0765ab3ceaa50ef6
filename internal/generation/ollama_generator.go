package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type OllamaGenerator struct {
	client        *http.Client
	model         string
	endpoint      string
	promptBuilder *PromptBuilder
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func NewOllamaGenerator(model, baseURL string, timeout time.Duration) *OllamaGenerator {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = "http://127.0.0.1:11434"
	}
	url = strings.TrimRight(url, "/")
	if !strings.HasSuffix(url, "/api/generate") {
		url += "/api/generate"
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	return &OllamaGenerator{
		client:        &http.Client{Timeout: timeout},
		model:         model,
		endpoint:      url,
		promptBuilder: &PromptBuilder{},
	}
}

func (o *OllamaGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(o.model) == "" {
		return nil, fmt.Errorf("ollama model is required")
	}
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  o.model,
		Prompt: o.promptBuilder.BuildOutlinePrompt(req),
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama generate request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed ollamaGenerateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return resultFromText(req, parsed.Response)
}
