package xnat

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package. The shared cookie jar
// keeps the JSESSIONID cookie so the server reuses one session across
// requests instead of opening a new one per call. Deadlines come from
// the request context.
type RealHTTPClient struct {
	client *http.Client
}

// NewRealHTTPClient builds the production HTTP client.
func NewRealHTTPClient() *RealHTTPClient {
	jar, _ := cookiejar.New(nil)
	return &RealHTTPClient{client: &http.Client{Jar: jar}}
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// MockHTTPClient is a test double for HTTPClient.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

// Do calls the mock function.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
