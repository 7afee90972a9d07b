package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrova/studytrack/internal/logging"
)

// DefaultTimeout bounds every request. It is deliberately generous: the
// AI report endpoints can take tens of seconds on the server side.
const DefaultTimeout = 60 * time.Second

const (
	requestIDHeader = "X-Request-Id"
	maxBodySize     = 8 << 20
)

// TokenSource supplies the current bearer token; an empty string means the
// request goes out unauthenticated. The session satisfies this.
type TokenSource interface {
	Token() string
}

// Client is the single shared HTTP client. All requests go through do(),
// which applies the outgoing credential policy and the incoming error
// classification.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	onExpired func(context.Context)
	log       logging.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// OnSessionExpired registers the hook invoked when a response reports the
// authorization as expired. The transport only emits the signal; deciding
// what an expired session means (teardown, redirect) belongs to the
// session layer.
func (c *Client) OnSessionExpired(fn func(context.Context)) {
	c.onExpired = fn
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Warn(ctx, "request timed out", "method", method, "path", path)
		} else {
			c.log.Warn(ctx, "request failed without a response", "method", method, "path", path, "error", err)
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode, Detail: errorDetail(body)}
		if resp.StatusCode == http.StatusUnauthorized {
			c.log.Warn(ctx, "authorization expired", "method", method, "path", path)
			if c.onExpired != nil {
				c.onExpired(ctx)
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode payload: %w", method, path, err)
	}
	return nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// setPage adds the shared pagination parameters, skipping zero values so
// the server applies its own defaults.
func setPage(q url.Values, page, pageSize int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
}
