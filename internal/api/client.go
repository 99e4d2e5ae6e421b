// Package api is a read-only client for the transcription backend's
// REST API. Uploads, auth flows, and job control belong to other tools.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kasetapp/kaset/internal/transcript"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a client for the given backend URL. The token is optional;
// when set it is sent as a bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// the backend wraps every response in a data envelope
type itemEnvelope struct {
	Data transcript.Record `json:"data"`
}

type listEnvelope struct {
	Data []transcript.Record `json:"data"`
}

// Transcription fetches a single transcription record by id.
func (c *Client) Transcription(ctx context.Context, id string) (*transcript.Record, error) {
	endpoint := fmt.Sprintf("%s/items/transcriptions/%s", c.baseURL, url.PathEscape(id))

	var env itemEnvelope
	if err := c.get(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// List fetches the most recent transcriptions, newest first.
func (c *Client) List(ctx context.Context) ([]transcript.Record, error) {
	endpoint := fmt.Sprintf("%s/items/transcriptions?sort=-date_created&limit=100", c.baseURL)

	var env listEnvelope
	if err := c.get(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AssetURL resolves a stored file id to a playable media locator. An
// empty id yields an empty URL: the media resource is not available yet.
func (c *Client) AssetURL(fileID string) string {
	if fileID == "" {
		return ""
	}
	return fmt.Sprintf("%s/assets/%s", c.baseURL, url.PathEscape(fileID))
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned %s for %s", resp.Status, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
