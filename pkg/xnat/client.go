// Package xnat is a small REST client for the XNAT archive, covering the
// listings and downloads the viewing workflow needs. Every listing comes
// back wrapped in XNAT's ResultSet.Result envelope.
package xnat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Environment variables holding the XNAT credentials.
const (
	EnvHost = "XNAT_HOST"
	EnvUser = "XNAT_USER"
	EnvPass = "XNAT_PASS"
)

// Client talks to one XNAT host with basic auth credentials.
type Client struct {
	Host string // base URL without trailing slash
	User string
	Pass string
	HTTP HTTPClient // injected for testing
}

// New builds a client. Credentials normally come from the settings file
// or the XNAT_HOST, XNAT_USER and XNAT_PASS environment variables; every
// field must end up non-empty.
func New(host, user, pass string, httpClient HTTPClient) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("XNAT host not configured (set %s)", EnvHost)
	}
	if user == "" {
		return nil, fmt.Errorf("XNAT user not configured (set %s)", EnvUser)
	}
	if pass == "" {
		return nil, fmt.Errorf("XNAT password not configured (set %s)", EnvPass)
	}
	if httpClient == nil {
		httpClient = NewRealHTTPClient()
	}
	return &Client{
		Host: strings.TrimRight(host, "/"),
		User: user,
		Pass: pass,
		HTTP: httpClient,
	}, nil
}

// Close deletes the server-side session token. Safe to call even when no
// request ever succeeded.
func (c *Client) Close(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/data/JSESSION")
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, uri string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Host+uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.User, c.Pass)
	return req, nil
}

// getResultSet fetches uri and returns the rows under ResultSet.Result.
func (c *Client) getResultSet(ctx context.Context, uri string) (gjson.Result, error) {
	req, err := c.newRequest(ctx, http.MethodGet, uri)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request to %s failed: %w", c.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(uri, resp); err != nil {
		return gjson.Result{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}
	return gjson.GetBytes(body, "ResultSet.Result"), nil
}

func checkStatus(uri string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("authentication failed (check %s and %s)", EnvUser, EnvPass)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("not found on server: %s", uri)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s returned status %d", uri, resp.StatusCode)
	}
	return nil
}
