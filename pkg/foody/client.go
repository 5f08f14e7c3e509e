/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package foody

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

//go:generate mockgen -source=client.go -destination=mock/interfaces.go -package=mock

// Doer is the transport used by the client, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the raw result of a request.  Non-2xx status codes are not
// errors, it's up to the caller to decide what is expected.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
	Duration   time.Duration
}

// String returns the response body as text.
func (r *Response) String() string {
	return string(r.Body)
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithDoer replaces the default HTTP client.
func WithDoer(doer Doer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithTimeout sets a per-request timeout on the default HTTP client.
// Zero leaves the transport default in place.
func WithTimeout(timeout time.Duration) Option {
	return func(c *APIClient) {
		c.timeout = timeout
	}
}

// WithAuthToken sets the bearer token up front.
func WithAuthToken(token string) Option {
	return func(c *APIClient) {
		c.authToken = token
	}
}

// WithLogger sets the logger, otherwise one is taken from the request context.
func WithLogger(log logr.Logger) Option {
	return func(c *APIClient) {
		c.log = &log
	}
}

// WithRequestLogging turns on logging of every request and/or response body.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *APIClient) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// APIClient talks to the Foody service.  It's constructed once per session
// and attaches the bearer token, if any, to every request.
type APIClient struct {
	baseURL      string
	client       Doer
	timeout      time.Duration
	authToken    string
	endpoints    *Endpoints
	log          *logr.Logger
	logRequests  bool
	logResponses bool
	closeOnce    sync.Once
}

// NewAPIClient returns a client rooted at baseURL.
func NewAPIClient(baseURL string, options ...Option) *APIClient {
	c := &APIClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		endpoints: NewEndpoints(),
	}

	for _, o := range options {
		o(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// BaseURL returns the service root.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Endpoints returns the endpoint path builder.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

func (c *APIClient) AuthToken() string {
	return c.authToken
}

// Close releases idle connections held by the transport.  Only the first
// call has any effect.
func (c *APIClient) Close() {
	c.closeOnce.Do(func() {
		if closer, ok := c.client.(interface{ CloseIdleConnections() }); ok {
			closer.CloseIdleConnections()
		}
	})
}

func (c *APIClient) logger(ctx context.Context) logr.Logger {
	if c.log != nil {
		return *c.log
	}

	return logr.FromContextOrDiscard(ctx)
}

// Execute issues an authenticated request.  The body, if not nil, is sent
// as JSON; a []byte body is sent verbatim.
func (c *APIClient) Execute(ctx context.Context, method, path string, body any) (*Response, error) {
	return c.execute(ctx, method, path, body, true)
}

func (c *APIClient) execute(ctx context.Context, method, path string, body any, authenticated bool) (*Response, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	var reader io.Reader

	switch t := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(t)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	return c.doRequest(ctx, method, path, reader, authenticated)
}

//nolint:cyclop
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, authenticated bool) (*Response, error) {
	log := c.logger(ctx).WithValues("method", method, "path", path)

	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	trace := newTraceParent()

	req.Header.Set("Traceparent", trace.String())
	req.Header.Set("Tracestate", "test-automation=foody")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated && c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration, "traceID", trace.traceID)
		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", trace.traceID, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "status", resp.StatusCode, "duration", duration, "traceID", trace.traceID)
		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", trace.traceID, err)
	}

	if c.logRequests {
		log.Info("request complete", "status", resp.StatusCode, "duration", duration, "traceID", trace.traceID)
	}

	if c.logResponses && len(respBody) > 0 {
		log.Info("response body", "status", resp.StatusCode, "body", string(respBody))
	}

	return &Response{
		Method:     method,
		URL:        fullURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    trace.traceID,
		Duration:   duration,
	}, nil
}

// CreateFood creates a new food record.
func (c *APIClient) CreateFood(ctx context.Context, food Food) (*Response, error) {
	return c.Execute(ctx, http.MethodPost, c.endpoints.CreateFood(), food)
}

// EditFood applies a patch to an existing food record.
func (c *APIClient) EditFood(ctx context.Context, foodID string, patch Patch) (*Response, error) {
	return c.Execute(ctx, http.MethodPatch, c.endpoints.EditFood(foodID), patch)
}

// ListFoods lists every food record.
func (c *APIClient) ListFoods(ctx context.Context) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.endpoints.ListFoods(), nil)
}

// DeleteFood deletes a food record.
func (c *APIClient) DeleteFood(ctx context.Context, foodID string) (*Response, error) {
	return c.Execute(ctx, http.MethodDelete, c.endpoints.DeleteFood(foodID), nil)
}
