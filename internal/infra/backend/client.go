// Package backend is the HTTP client of the remote auth and tontine services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tontine/config"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/domain/service"
	"tontine/internal/errors"

	"go.uber.org/fx"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Tokens service.AccessTokenSource
}

// Client implements service.AuthService and service.TontineService over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	tokens     service.AccessTokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a backend client from configuration.
func New(params Params) (*Client, error) {
	cfg := params.Config.Backend
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("backend base URL must be provided")
	}

	return NewClient(cfg.BaseURL, cfg.UserAgent, cfg.Timeout, params.Tokens, params.Logger), nil
}

// NewClient creates a backend client. A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL, userAgent string, timeout time.Duration, tokens service.AccessTokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		tokens:    tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// do sends a JSON request and returns the response status and body.
// Transport failures are reported as network errors.
func (c *Client) do(ctx context.Context, method, path string, payload any, authenticated bool) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if authenticated && c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "Network request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, errors.Wrap(err, "Network request failed while reading response")
	}

	c.logger.Debug("Backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return resp.StatusCode, data, nil
}

// decode parses a JSON body into out.
func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "JSON parsing of backend response failed")
	}

	return nil
}

// statusError maps a non-successful status of a read endpoint.
func statusError(status int, notFound *domainerrors.BaseError) error {
	switch {
	case status == http.StatusUnauthorized:
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	case status == http.StatusNotFound && notFound != nil:
		return errors.WithStack(notFound)
	default:
		return errors.Errorf("backend returned status %d", status)
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
