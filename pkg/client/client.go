// Package client provides a typed Go client for the siamhora HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// defaultTimeout bounds every request unless the caller supplies a client.
const defaultTimeout = 10 * time.Second

// Client calls the siamhora API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  "siamhora-go-client",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the service's error payload.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// get performs a GET against path with query values and decodes the JSON
// response into out.  Non-2xx responses are decoded into an AppError
// carrying the service's error code.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeExternalService, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if derr := json.NewDecoder(resp.Body).Decode(&ae); derr == nil && ae.Code != "" {
			return apperrors.New(apperrors.ErrorCode(ae.Code), ae.Message)
		}
		return apperrors.Newf(apperrors.ErrCodeExternalService,
			"service answered %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization,
			fmt.Sprintf("decoding %s response", path))
	}
	return nil
}

//Personal.AI order the ending
