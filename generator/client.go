package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://fal.run"
	defaultModel   = "fal-ai/flux/schnell"
	httpTimeout    = 120 * time.Second

	// Schnell-class models produce usable interiors in very few steps;
	// keeping this low keeps per-image cost down.
	numInferenceSteps = 4

	maxResponseBytes = 1 << 20
	maxImageBytes    = 32 << 20
)

// ErrNoAPIKey is returned when the image service credential is not
// configured. The generator feature is disabled; the rest of the site works.
var ErrNoAPIKey = errors.New("generator: image service API key is not configured")

// Client calls the hosted text-to-image service. The credential is injected
// at construction; there is no package-level configuration.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the service endpoint (used in tests).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithModel overrides the model path appended to the base URL.
func WithModel(m string) ClientOption {
	return func(c *Client) { c.model = m }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// NewClient creates a client for the image generation service.
// An empty apiKey is allowed; Generate then fails fast with ErrNoAPIKey.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		httpc:   &http.Client{Timeout: httpTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a credential was injected.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Prompt            string `json:"prompt"`
	ImageSize         string `json:"image_size"`
	NumInferenceSteps int    `json:"num_inference_steps"`
	Seed              int64  `json:"seed"`
	NumImages         int    `json:"num_images"`
}

type generateResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	RequestID string `json:"request_id"`
}

// Result is one successful generation.
type Result struct {
	URL       string
	Prompt    string
	RequestID string
}

// Generate sends prompt to the image service and returns the hosted image
// URL. A random seed varies otherwise-identical requests. Transport errors,
// non-2xx statuses and empty image lists all return an error; no partial
// result is ever returned.
func (c *Client) Generate(ctx context.Context, prompt, imageSize string) (*Result, error) {
	if !c.Configured() {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Prompt:            prompt,
		ImageSize:         NormalizeSize(imageSize),
		NumInferenceSteps: numInferenceSteps,
		Seed:              int64(rand.Int32()),
		NumImages:         1,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("generator: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generator: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("generator: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("generator: service returned %s: %s", resp.Status, snippet(data))
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("generator: decode response: %w", err)
	}
	if len(out.Images) == 0 || out.Images[0].URL == "" {
		return nil, errors.New("generator: no images were generated")
	}

	return &Result{
		URL:       out.Images[0].URL,
		Prompt:    prompt,
		RequestID: out.RequestID,
	}, nil
}

// FetchImage downloads a generated image so it can be re-served as an
// attachment. Only http(s) URLs are accepted.
func (c *Client) FetchImage(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("generator: invalid image URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("generator: build download request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("generator: download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("generator: download returned %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("generator: read image: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
