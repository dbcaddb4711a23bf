// Package gemini is a small client for the Generative Language REST API,
// covering the two calls the dashboard needs: structured item detection on
// an image and free-form text generation.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	apiKeyHeader = "x-goog-api-key"
)

// ErrMissingAPIKey is returned by every call when no key is configured.
var ErrMissingAPIKey = errors.New("gemini: api key is not configured")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: api error (%d): %s", e.StatusCode, e.Message)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// New builds a client. The underlying http.Client has no timeout; callers
// bound calls through ctx if they need to.
func New(cfg Config) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	return c
}

// WithHTTPClient swaps the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

const detectInstruction = "Analyze this image of refrigerator contents. Identify the food items visible. " +
	"Return a JSON array where each object has: 'name' (string), 'quantity' (estimated number), " +
	"'unit' (e.g., 'pcs', 'bottle', 'kg'), 'category' (one of: Dairy, Produce, Meat, Beverage, Snack, Condiment, Other), " +
	"and 'estimatedExpiryDays' (integer estimate of shelf life from today for a fresh item)."

// detectionSchema mirrors the item shape the inventory expects.
var detectionSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name":                {Type: "STRING"},
			"quantity":            {Type: "NUMBER"},
			"unit":                {Type: "STRING"},
			"category":            {Type: "STRING"},
			"estimatedExpiryDays": {Type: "INTEGER"},
		},
		Required: []string{"name", "category", "estimatedExpiryDays"},
	},
}

// DetectItems sends the image and returns the model's raw JSON text.
// Validation of that text is left to the caller.
func (c *Client) DetectItems(ctx context.Context, image []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	req := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: detectInstruction},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   detectionSchema,
		},
	}
	return c.generate(ctx, req)
}

// GenerateText sends a plain prompt and returns the concatenated answer.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
	}
	return c.generate(ctx, req)
}

func (c *Client) generate(ctx context.Context, body generateContentRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	return out.text(), nil
}

// errorMessage pulls error.message out of an error body, falling back to
// the raw body.
func errorMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return strings.TrimSpace(string(body))
}
