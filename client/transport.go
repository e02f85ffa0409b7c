package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Transport performs the HTTP exchanges on behalf of the Client.
// Each call resolves exactly once: either the decoded response body is written into out
// (when out is non-nil and the server sent a body) or an error is returned.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// APIError is returned by RestyTransport when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status: %d, message: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError carrying a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// RestyTransport is the default Transport, backed by a resty client.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a transport that resolves paths against baseURL.
// If httpClient is nil, resty's default client is used.
func NewRestyTransport(baseURL string, httpClient *http.Client) *RestyTransport {
	var rc *resty.Client
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	rc.SetHeader("Accept", "application/json")
	return &RestyTransport{client: rc}
}

// SetAccessToken makes every request carry the `Authorization: Bearer {token}` header.
func (t *RestyTransport) SetAccessToken(token string) *RestyTransport {
	t.client.SetAuthToken(token)
	return t
}

// SetLogger routes resty's internal warnings and debug output to l.
func (t *RestyTransport) SetLogger(l resty.Logger) *RestyTransport {
	t.client.SetLogger(l)
	return t
}

func (t *RestyTransport) Get(ctx context.Context, path string, out any) error {
	return t.execute(ctx, http.MethodGet, path, nil, out)
}

func (t *RestyTransport) Post(ctx context.Context, path string, body, out any) error {
	return t.execute(ctx, http.MethodPost, path, body, out)
}

func (t *RestyTransport) execute(ctx context.Context, method, path string, body, out any) error {
	req := t.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	if resp.IsError() {
		return parseErrorResponse(resp)
	}
	return nil
}

// parseErrorResponse extracts the server's message from an error response.
// JSON bodies of the form {"error": "..."} yield the inner message, anything else is used verbatim.
func parseErrorResponse(resp *resty.Response) error {
	msg := strings.TrimSpace(resp.String())

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		msg = body.Error
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
