// Package httpbackend runs a journal session against a remote weekling
// server instead of the local database. The server scopes every request to
// the authenticated cookie, so the session user ID is not sent on the wire.
package httpbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marisolvale/weekling/internal/journal"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrRequestFailed    = errors.New("backend request failed")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	authCookie *http.Cookie
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Login authenticates against the server and keeps the session cookie for
// subsequent requests.
func (client *Client) Login(ctx context.Context, email string, password string) error {
	payload, err := json.Marshal(map[string]any{
		"email":      email,
		"password":   password,
		"rememberMe": true,
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: login status %d", ErrRequestFailed, response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "weekling_auth" && cookie.Value != "" {
			client.authCookie = cookie
			return nil
		}
	}
	return errors.New("auth cookie missing in login response")
}

func (client *Client) Fetch(ctx context.Context, _ uint, weekKey string) (journal.Record, bool, error) {
	record := journal.Record{}
	status, err := client.doJSON(ctx, http.MethodGet, "/api/weeks/"+url.PathEscape(weekKey), nil, &record)
	if err != nil {
		return journal.Record{}, false, err
	}
	switch status {
	case http.StatusOK:
		return record, true, nil
	case http.StatusNotFound:
		return journal.Empty(), false, nil
	}
	return journal.Record{}, false, fmt.Errorf("%w: fetch week %s status %d", ErrRequestFailed, weekKey, status)
}

func (client *Client) Upsert(ctx context.Context, _ uint, weekKey string, record journal.Record) error {
	status, err := client.doJSON(ctx, http.MethodPut, "/api/weeks/"+url.PathEscape(weekKey), record, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: save week %s status %d", ErrRequestFailed, weekKey, status)
	}
	return nil
}

func (client *Client) ListWeekKeys(ctx context.Context, _ uint) ([]string, error) {
	listing := struct {
		Weeks []string `json:"weeks"`
	}{}
	status, err := client.doJSON(ctx, http.MethodGet, "/api/weeks", nil, &listing)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: list weeks status %d", ErrRequestFailed, status)
	}
	return listing.Weeks, nil
}

func (client *Client) FetchMany(ctx context.Context, _ uint, weekKeys []string) (map[string]journal.Record, error) {
	if len(weekKeys) == 0 {
		return map[string]journal.Record{}, nil
	}

	batch := struct {
		Weeks map[string]journal.Record `json:"weeks"`
	}{}
	path := "/api/weeks/batch?keys=" + url.QueryEscape(strings.Join(weekKeys, ","))
	status, err := client.doJSON(ctx, http.MethodGet, path, nil, &batch)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: batch weeks status %d", ErrRequestFailed, status)
	}
	if batch.Weeks == nil {
		batch.Weeks = map[string]journal.Record{}
	}
	return batch.Weeks, nil
}

func (client *Client) doJSON(ctx context.Context, method string, path string, payload any, target any) (int, error) {
	if client.authCookie == nil {
		return 0, ErrNotAuthenticated
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.AddCookie(client.authCookie)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		return response.StatusCode, ErrNotAuthenticated
	}
	if target != nil && response.StatusCode == http.StatusOK {
		if err := json.NewDecoder(response.Body).Decode(target); err != nil {
			return response.StatusCode, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return response.StatusCode, nil
}
