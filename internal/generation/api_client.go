package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"outliner/internal/log"
)

const defaultAPIURL = "http://127.0.0.1:5000/api"

// minSuggestQueryLen is the query length the suggestion service needs
// before it is worth asking.
const minSuggestQueryLen = 3

// APIClient talks to the outline generation service.
type APIClient struct {
	client  *http.Client
	baseURL string
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultAPIURL
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &APIClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: base,
	}
}

func (c *APIClient) Generate(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-outline", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Get().Debug("requesting outline", zap.String("topic", req.Topic), zap.String("output_type", req.OutputType))
	raw, err := c.do(httpReq, "generate outline")
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if strings.TrimSpace(res.GeneratedContent) == "" {
		return nil, ErrInvalidResponse
	}
	return &res, nil
}

// Suggest asks the service for topics matching query. Queries of two
// characters or fewer return nothing without a request.
func (c *APIClient) Suggest(ctx context.Context, query string) ([]string, error) {
	if len([]rune(query)) < minSuggestQueryLen {
		return nil, nil
	}
	u := c.baseURL + "/suggest-topics?query=" + url.QueryEscape(query)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(httpReq, "fetch suggestions")
	if err != nil {
		return nil, err
	}
	var res suggestResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if res.Suggestions == nil {
		return []string{}, nil
	}
	return res.Suggestions, nil
}

func (c *APIClient) do(req *http.Request, what string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", what, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to %s (%d): %s", what, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}
