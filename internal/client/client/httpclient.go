package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

// Backend routes. The push/pull paths follow the deployed REST API.
const (
	loginPath = "/auth/login"
	pushPath  = "/sync/syncAllToMongo"
	pullPath  = "/sync/loadAllFromMongo"
)

// HTTPClient implements Client against the REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, loginPath, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	if body.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}

	return &Session{Token: body.Token, UserID: body.User.ID}, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodHead, "/", "", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) PushAll(ctx context.Context, token string, payload map[models.Collection][]models.Record) (*PushResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, pushPath, token, payload)
	if err != nil {
		return nil, err
	}

	var body PushResponse
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *HTTPClient) PullAll(ctx context.Context, token string) (map[string][]models.Record, error) {
	resp, err := c.do(ctx, http.MethodGet, pullPath, token, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data map[string][]models.Record `json:"data"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}
