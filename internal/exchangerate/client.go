package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"currency-converter/internal"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

var errNoRates = errors.New("response has no rates")

// Client talks to an exchangerate-api style provider:
// GET <BaseURL>/<BASE> returns {"base": ..., "rates": {...}}.
type Client struct {
	BaseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewLoggingTransport(http.DefaultTransport, logger),
		},
	}
}

func (c *Client) Latest(ctx context.Context, base internal.CurrencyCode) (*internal.LatestRatesResponse, error) {
	if base == "" {
		return nil, fmt.Errorf("base currency is empty")
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.JoinPath(c.BaseURL, base.String())
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rates provider http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out internal.LatestRatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Rates.Len() == 0 {
		return nil, errNoRates
	}
	return &out, nil
}
