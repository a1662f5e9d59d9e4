// Package sanity is a content.Store over the hosted document store HTTP API.
// Documents are read with a GROQ point query and written with a
// createOrReplace mutation.
package sanity

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

	"github.com/lensfolio/lensfolio/internal/content"
)

var (
	// ErrNotConfigured is returned when project id or dataset are missing.
	ErrNotConfigured = errors.New("document store project id and dataset are required")

	// ErrUnexpectedStatus is returned for non 2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected document store response")

	// ErrNotObject is returned by Put for bodies that are not a JSON object.
	ErrNotObject = errors.New("document body must be an object")
)

var _ content.Store = (*Client)(nil)

// Config of the client.
type Config struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string
	UseCDN     bool
	// BaseURL replaces https://<project>.api.sanity.io, used by tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to the query and mutate endpoints.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a client.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" || cfg.Dataset == "" {
		return nil, ErrNotConfigured
	}

	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{cfg: cfg, http: hc}, nil
}

func (c *Client) endpoint(cdn bool, parts ...string) string {
	base := c.cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if cdn {
			host = "apicdn.sanity.io"
		}

		base = "https://" + c.cfg.ProjectID + "." + host
	}

	return strings.TrimRight(base, "/") + "/v" + c.cfg.APIVersion + "/data/" + strings.Join(parts, "/")
}

// Query builds the point query for a singleton document.
func Query(t content.DocumentType) string {
	return fmt.Sprintf(`*[_type == %q && _id == %q][0]`, t, t)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Get fetches the published document of type t.
func (c *Client) Get(ctx context.Context, t content.DocumentType) ([]byte, error) {
	q := url.Values{}
	q.Set("query", Query(t))
	q.Set("perspective", "published")

	// authenticated reads bypass the cdn
	cdn := c.cfg.UseCDN && c.cfg.Token == ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(cdn, "query", c.cfg.Dataset)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var out queryResponse
	if err = c.do(req, &out); err != nil {
		return nil, err
	}

	if len(out.Result) == 0 || string(out.Result) == "null" {
		return nil, content.ErrDocumentNotFound
	}

	return out.Result, nil
}

// Put replaces the document of type t with body.
func (c *Client) Put(ctx context.Context, t content.DocumentType, body []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrNotObject, err)
	}

	if doc == nil {
		return ErrNotObject
	}

	id, _ := json.Marshal(string(t))
	doc["_id"] = id
	doc["_type"] = id

	payload, err := json.Marshal(map[string]any{
		"mutations": []any{
			map[string]any{"createOrReplace": doc},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode mutation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint(false, "mutate", c.cfg.Dataset)+"?returnIds=true", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("document store request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20)) //nolint:mnd
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
