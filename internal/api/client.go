package api

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

	"clickmart/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const statusSuccessful = "SUCCESSFUL"

// Envelope is the uniform response shape every backend endpoint returns.
type Envelope struct {
	Status           string          `json:"STATUS"`
	DBData           json.RawMessage `json:"DB_DATA"`
	ErrorDescription string          `json:"ERROR_DESCRIPTION"`
}

// TokenSource supplies the bearer token attached to authenticated calls.
// An empty token means the call goes out anonymous.
type TokenSource interface {
	AccessToken() string
}

// Invoker is the surface domain services program against, so they can be
// tested without a live backend.
type Invoker interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, query url.Values) error
}

// Client talks to the storefront backend. All responses arrive wrapped in
// the Envelope; DB_DATA is decoded into the caller-supplied out value.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		// Frontend-heavy tier: generous steady rate, bursty UI allowed.
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		tokens:  tokens,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.L().Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: decode response (http %d): %v", ErrRequestFailed, resp.StatusCode, err)
	}

	logger.L().Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("http_status", resp.StatusCode),
		zap.String("status", env.Status),
		zap.Duration("took", time.Since(start)),
	)

	if env.Status != statusSuccessful {
		desc := env.ErrorDescription
		if desc == "" {
			desc = fmt.Sprintf("http %d", resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", ErrRequestFailed, desc)
	}

	if out != nil && len(env.DBData) > 0 {
		if err := json.Unmarshal(env.DBData, out); err != nil {
			return fmt.Errorf("%w: decode DB_DATA: %v", ErrRequestFailed, err)
		}
	}
	return nil
}
