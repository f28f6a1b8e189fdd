// Package rest provides a small JSON-over-HTTP client for read-only REST
// APIs such as ledger indexers. It decodes JSON bodies, turns error responses
// into typed errors, and tags every request with a unique request id.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote API answered with a
	// non-2xx status code.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrNotFound indicates a 404 answer. It is always joined with
	// ErrProviderReturnedError.
	ErrNotFound = errors.New("resource not found")
)

// RequestIDHeader carries the id generated for every outgoing request.
const RequestIDHeader = "X-Request-Id"

// maxErrorBodySize bounds how much of an error response body is read.
const maxErrorBodySize = 64 << 10

// errorResponse is the common shape of REST API error bodies.
type errorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Client performs GET requests against a REST API.
type Client interface {
	// Get fetches path (relative to the base URL) with the given query and
	// decodes the JSON body into out. Non-2xx answers return an error wrapping
	// ErrProviderReturnedError; 404 answers also wrap ErrNotFound.
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// client is the default implementation of Client.
type client struct {
	baseURL    string            // API root, without trailing slash
	headers    map[string]string // static headers sent with every request
	httpClient *http.Client      // client used to perform requests
}

var _ Client = (*client)(nil)

// NewClient returns a Client rooted at baseURL that sends headers with every request.
func NewClient(httpClient *http.Client, baseURL string, headers map[string]string) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		httpClient: httpClient,
	}
}

// Get implements Client.
func (c *client) Get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// decodeError builds the error returned for a non-2xx response.
func decodeError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))

	message := strings.TrimSpace(string(body))
	var data errorResponse
	if err := json.Unmarshal(body, &data); err == nil && data.Message != "" {
		message = data.Message
	}

	err := fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, res.StatusCode, message)
	if res.StatusCode == http.StatusNotFound {
		err = errors.Join(ErrNotFound, err)
	}

	return err
}
