// Package mattermost provides a typed client for the subset of the
// Mattermost REST API (v4) used by the MCP server: teams, users, channels,
// posts, reactions and pinning.
package mattermost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const apiRoot = "/api/v4"

const (
	defNumAttempts = 3

	// Mattermost defaults to 10 requests per second per session.
	defEvery = 100 * time.Millisecond
	defBurst = 10
)

// maxAllowedWaitTime caps the wait before retrying a transient server error.
var maxAllowedWaitTime = 30 * time.Second

// waitFn returns the amount of time to wait before retrying depending on the
// current attempt.  This variable exists to reduce the test time.
var waitFn = expWait

// ErrRetryFailed is returned when the request did not complete within the
// allowed number of retry attempts.
var ErrRetryFailed = errors.New("request was unable to complete within the allowed number of retries")

// Client is a Mattermost REST API client.  Zero value is not usable, create
// one with New.
type Client struct {
	cl      *http.Client
	apiPath string
	token   string
	lim     *rate.Limiter
}

// Option is the signature of the Client option-setting function.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimiter sets the rate limiter that throttles outgoing requests.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.lim = l
		}
	}
}

// New creates a new Mattermost API client for the instance at baseURL,
// authenticating every request with the given bearer token.
func New(baseURL, token string, opt ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL is empty")
	}
	if token == "" {
		return nil, errors.New("token is empty")
	}
	c := &Client{
		cl:      http.DefaultClient,
		apiPath: strings.TrimRight(baseURL, "/") + apiRoot,
		token:   token,
		lim:     rate.NewLimiter(rate.Every(defEvery), defBurst),
	}
	for _, o := range opt {
		o(c)
	}
	return c, nil
}

// get issues a GET request to path and decodes the response body into v.
func (c *Client) get(ctx context.Context, path string, v any) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

// post issues a POST request with body serialised as JSON, decoding the
// response into v.  v may be nil when the response body is not needed.
func (c *Client) post(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPost, path, body, v)
}

// del issues a DELETE request to path, discarding the response body.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs a single API call with rate limiting and bounded retries.  A
// 429 response is retried after the server-indicated delay, a transient 5xx
// after a backoff.  Any other non-2xx response is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, v any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}
	for attempt := range defNumAttempts {
		if err := c.lim.Wait(ctx); err != nil {
			return err
		}
		var rdr *bytes.Reader
		if payload != nil {
			rdr = bytes.NewReader(payload)
		}
		req, err := newRequest(ctx, method, c.apiPath+path, rdr)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.cl.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode >= http.StatusBadRequest {
			apiErr := decodeError(resp)
			if resp.StatusCode == http.StatusTooManyRequests {
				if err := sleepCtx(ctx, retryAfter(resp)); err != nil {
					return err
				}
				continue
			}
			if isRecoverable(resp.StatusCode) {
				if err := sleepCtx(ctx, waitFn(attempt)); err != nil {
					return err
				}
				continue
			}
			return apiErr
		}
		if v == nil {
			resp.Body.Close()
			return nil
		}
		err = json.NewDecoder(resp.Body).Decode(v)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
		return nil
	}
	return ErrRetryFailed
}

// newRequest constructs an *http.Request avoiding the typed-nil body pitfall.
func newRequest(ctx context.Context, method, url string, body *bytes.Reader) (*http.Request, error) {
	if body == nil {
		return http.NewRequestWithContext(ctx, method, url, nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// isRecoverable returns true if the status code is a transient server error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != http.StatusNotImplemented) || statusCode == http.StatusRequestTimeout
}

// retryAfter returns the delay indicated by the Retry-After header, falling
// back to one second when the header is absent or malformed.
func retryAfter(resp *http.Response) time.Duration {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return time.Second
	}
	return time.Duration(secs) * time.Second
}

// expWait is the transient-error wait function, 2^(attempt+1) seconds capped
// at maxAllowedWaitTime.
func expWait(attempt int) time.Duration {
	delay := time.Duration(1<<(attempt+1)) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// values encodes non-empty string pairs into url.Values.
func values(pairs map[string]string) url.Values {
	v := make(url.Values)
	for k, val := range pairs {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}
