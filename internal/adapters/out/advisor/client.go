// Package advisor calls a hosted text-generation model through its
// generateContent REST endpoint and implements ports.LogisticsAdvisor.
package advisor

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

	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-3-flash-preview"

	defaultTimeout = 20 * time.Second
	maxErrorBody   = 512

	// The API key is sent only in this header, never in the URL.
	apiKeyHeader = "x-goog-api-key"
)

var ErrNotConfigured = errs.NewValueIsRequiredError("advisor api key")

// Client sends one prompt per call and returns the concatenated text parts
// of the first candidate.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewClient builds a client. Blank baseURL and model fall back to the
// defaults; a blank apiKey yields a client whose every call fails with
// ErrNotConfigured.
func NewClient(baseURL, apiKey, model string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Advise asks the model about the geographic clustering of the given orders.
// A successful call may still return empty text.
func (c *Client) Advise(ctx context.Context, orders []ports.OrderLoad) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	prompt, err := BuildPrompt(orders)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("advisor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode advisor response: %w", err)
	}

	if len(decoded.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// BuildPrompt renders the instruction with the orders embedded as JSON.
func BuildPrompt(orders []ports.OrderLoad) (string, error) {
	if orders == nil {
		orders = []ports.OrderLoad{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Analyze the following work orders for logistic efficiency. Identify if tasks are geographically clustered or if there are outliers.
Data: %s

Requirements:
1. Keep it short (max 3 sentences).
2. Suggest which order is best for a new task in a specific neighborhood if you see patterns.
3. Language: Russian.`, data), nil
}
