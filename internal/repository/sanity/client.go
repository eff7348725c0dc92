package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dom/power-league-website/internal/domain"
)

const (
	DefaultDataset    = "production"
	DefaultAPIVersion = "2024-01-01"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the host derived from ProjectID.
	BaseURL string
	Timeout time.Duration
}

// Client runs GROQ queries against the Sanity HTTP query API.
type Client struct {
	baseURL    string
	dataset    string
	apiVersion string
	token      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		baseURL = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	dataset := cfg.Dataset
	if dataset == "" {
		dataset = DefaultDataset
	}
	apiVersion := strings.TrimPrefix(cfg.APIVersion, "v")
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		dataset:    dataset,
		apiVersion: apiVersion,
		token:      cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

type errorResponse struct {
	Error struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"error"`
}

// QueryURL builds the GET URL for a query and its parameters.
func (c *Client) QueryURL(groq string, params map[string]any) (string, error) {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("failed to encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	return fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, url.PathEscape(c.dataset), values.Encode()), nil
}

// Query executes groq and decodes the result field into out. A null result
// leaves out untouched.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) error {
	queryURL, err := c.QueryURL(groq, params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", domain.ErrContentUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
			return fmt.Errorf("%w: status %d: %s", domain.ErrContentUnavailable, resp.StatusCode, apiErr.Error.Description)
		}
		return fmt.Errorf("%w: status %d", domain.ErrContentUnavailable, resp.StatusCode)
	}

	var qr queryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", domain.ErrMalformedContent, err)
	}
	if len(qr.Result) == 0 || string(qr.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(qr.Result, out); err != nil {
		return fmt.Errorf("%w: failed to decode result: %v", domain.ErrMalformedContent, err)
	}
	return nil
}
