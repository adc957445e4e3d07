package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TokenSource supplies the bearer token for authenticated calls. Clear is
// invoked when the backend answers 401, so an expired token is dropped as a
// side effect of the call that discovered it.
type TokenSource interface {
	Token() string
	Clear()
}

type Response struct {
	Status int
	Data   []byte
}

// Transport handles low-level HTTP and authentication
type Transport struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and a token source
func NewTransport(baseURL string, tokens TokenSource, timeout time.Duration) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) Get(ctx context.Context, path string, query map[string]string) (*Response, error) {
	return t.do(ctx, http.MethodGet, path, nil, query, true)
}

func (t *Transport) Post(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPost, path, body, nil, true)
}

func (t *Transport) Put(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPut, path, body, nil, true)
}

func (t *Transport) Delete(ctx context.Context, path string) (*Response, error) {
	return t.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// postAnon is for the login call, the only request sent without a token.
func (t *Transport) postAnon(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPost, path, body, nil, false)
}

func (t *Transport) do(ctx context.Context, method, path string, body any, query map[string]string, authed bool) (*Response, error) {
	token := ""
	if authed {
		token = t.Tokens.Token()
		if token == "" {
			return nil, &APIError{Kind: ErrUnauthenticated, Method: method, Path: path}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.buildURL(path, query), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: ErrNetwork, Method: method, Path: path, Body: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: ErrNetwork, Method: method, Path: path, Body: err.Error()}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Data: data}, nil
	}

	return nil, t.statusError(method, path, resp.StatusCode, data)
}

func (t *Transport) statusError(method, path string, status int, body []byte) error {
	kind := ErrNetwork
	switch status {
	case http.StatusBadRequest:
		kind = ErrInvalidArgument
	case http.StatusUnauthorized:
		// Expired or revoked token: drop it so the next operation reports
		// Unauthenticated before hitting the network.
		t.Tokens.Clear()
		kind = ErrUnauthenticated
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	}
	return &APIError{Kind: kind, Status: status, Method: method, Path: path, Body: string(body)}
}
