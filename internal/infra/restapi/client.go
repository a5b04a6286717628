// Package restapi talks to the platform backend's REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rxconsole/config"
	deliverycontext "rxconsole/internal/delivery/context"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/infra/metrics"

	"github.com/pkg/errors"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// envelope is the backend's response wrapper.
type envelope struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data"`
	Meta        *meta           `json:"meta"`
	UnReadCount *int            `json:"unReadCount"`
}

type meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPage   int  `json:"totalPage"`
	UnReadCount *int `json:"unReadCount"`
}

// unreadCount prefers meta.unReadCount and falls back to the top-level field.
func (e *envelope) unreadCount() int {
	if e.Meta != nil && e.Meta.UnReadCount != nil {
		return *e.Meta.UnReadCount
	}
	if e.UnReadCount != nil {
		return *e.UnReadCount
	}

	return 0
}

// request is one backend call.
type request struct {
	resource    string // metric label, the repository's base path
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// Client performs authenticated backend calls and unwraps the response envelope.
type Client struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
}

// NewClient creates a backend client from the api configuration.
func NewClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.API.BaseURL, "/"),
		pageLimit: cfg.API.PageLimit,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// PageLimit is the page size requested from list endpoints.
func (c *Client) PageLimit() int {
	return c.pageLimit
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// do sends the request and returns the decoded envelope of a successful answer.
// The bearer token is resolved first so a missing session never reaches the network.
func (c *Client) do(ctx context.Context, req request) (*envelope, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + "/" + strings.TrimLeft(req.path, "/")
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resource := req.resource
	if resource == "" {
		resource = "unknown"
	}
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.BackendDuration.WithLabelValues(resource, req.method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequests.WithLabelValues(resource, req.method, "error").Inc()

		return nil, errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer resp.Body.Close()
	metrics.BackendRequests.WithLabelValues(resource, req.method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.failure(ctx, req, resp)
	}

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "decode %s %s response", req.method, req.path)
		}
	} else {
		env.Success = true
	}

	if !env.Success && env.Message != "" {
		return nil, &repository.APIError{StatusCode: resp.StatusCode, ServerMessage: env.Message}
	}

	return &env, nil
}

func (c *Client) failure(ctx context.Context, req request, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env envelope
	message := ""
	if err := json.Unmarshal(body, &env); err == nil {
		message = env.Message
	}

	c.log(ctx).Warn("Backend call failed",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.String("message", message))

	apiErr := &repository.APIError{StatusCode: resp.StatusCode, ServerMessage: message}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrap(domainerrors.ErrSessionExpired, apiErr.Error())
	}

	return apiErr
}

func jsonBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes.NewReader(raw), nil
}
