// Package api is a thin client for the dashboard's REST backend.
//
// Every resource (users, tasks, comments) exposes the same contract:
// List/Get/Create/Update/Delete, one HTTP request per call. Non-2xx
// responses surface as *APIError carrying the raw status and body text.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Now is the clock used for cache-busting tokens and client-side
	// comment timestamps. Overridable in tests.
	Now func() time.Time
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: http.DefaultClient,
		Now:        time.Now,
	}
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, body)
}

// ListResponse is the envelope every list endpoint returns.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// do issues one request and decodes a JSON response into out (if non-nil).
// A 2xx response without a JSON body (e.g. 204 from delete) leaves out
// untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.BaseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{StatusCode: res.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	ct := res.Header.Get("Content-Type")
	if len(data) == 0 || !strings.Contains(ct, "application/json") {
		return nil
	}
	return json.Unmarshal(data, out)
}

// cacheBust returns the `_t` token appended to every list/get request so
// intermediaries never serve a stale snapshot.
func (c *Client) cacheBust() string {
	return strconv.FormatInt(c.now().UnixMilli(), 10)
}
