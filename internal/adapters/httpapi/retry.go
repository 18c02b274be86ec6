package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// Linear backoff tuned for a local trusted network: attempt counts are small
// and the service is one hop away, so a jittered exponential schedule would
// buy nothing here.
const (
	backoffBase      = 250 * time.Millisecond
	backoffIncrement = 100 * time.Millisecond
	backoffCeiling   = 500 * time.Millisecond

	maxResponseBytes = 1 << 20
)

// send executes one logical request with bounded retries. A 2xx response
// returns the body immediately; any other status, transport error, or
// timeout fails the attempt. Context cancellation aborts mid-wait and is
// propagated as-is, never converted into a retry or an Unavailable error.
func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	endpoint, err := buildURL(c.resolveBase(), path)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	attempts := c.maxAttempts()
	delay := backoffBase
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		data, err := c.sendOnce(ctx, method, endpoint, payload)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		if err := c.clock().Sleep(ctx, delay); err != nil {
			return nil, err
		}
		delay = min(backoffCeiling, delay+backoffIncrement)
	}

	return nil, fmt.Errorf("%s %s after %d attempts: %w: %w", method, path, attempts, domain.ErrUnavailable, lastErr)
}

func (c *Client) sendOnce(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	reqCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.requestTimeout())
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, errorDetail(resp.StatusCode, data))
	}

	return data, nil
}

// errorDetail prefers the service's {"detail": ...} message so login and
// registration failures surface verbatim.
func errorDetail(statusCode int, body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(statusCode)
	}
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}

func buildURL(base, path string) (string, error) {
	parsed, err := urlParse(base)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(parsed, "/") + path, nil
}

func urlParse(base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("base url is required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return "", fmt.Errorf("base url %q must use http or https", base)
	}
	return base, nil
}
