// Package transport sends the raw HTTP requests. The servers expect
// form-encoded POST bodies, reject the default Go user agent and answer
// 200 even for protocol errors, so the dispatch layer interprets
// bodies; this package only moves bytes.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport wraps an http.Client with the header discipline the
// servers require. The zero value is not usable; call New.
type Transport struct {
	Client *http.Client

	// Headers are sent on every request. The blank User-Agent matters:
	// the servers drop requests carrying Go's default.
	Headers map[string]string
}

func New(headers map[string]string) *Transport {
	return &Transport{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		Headers: headers,
	}
}

// PostForm sends a form-encoded POST and returns the body as a string.
// Non-2xx statuses are an error; negative protocol codes inside a 200
// body are not and pass through untouched.
func (t *Transport) PostForm(ctx context.Context, baseURL, path string, fields map[string]string) (string, error) {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	t.applyHeaders(req)

	body, err := t.do(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Get sends a GET with optional query parameters and per-request
// headers, returning the raw body. Used for the content server, which
// serves binary payloads.
func (t *Transport) Get(ctx context.Context, baseURL, path string, query url.Values, headers map[string]string) ([]byte, error) {
	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	t.applyHeaders(req)
	for k, v := range headers {
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
	return t.do(req)
}

func (t *Transport) applyHeaders(req *http.Request) {
	// Force the header even when unset so net/http does not inject its
	// default agent.
	req.Header.Set("User-Agent", "")
	for k, v := range t.Headers {
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
}

func (t *Transport) do(req *http.Request) ([]byte, error) {
	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}
