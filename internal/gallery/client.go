package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL of the photo API.
	DefaultBaseURL = "https://api.unsplash.com"

	// DefaultPerPage is the page size of list calls.
	DefaultPerPage = 30

	// DefaultTimeout bounds every single API call.
	DefaultTimeout = 10 * time.Second

	maxConcurrentFetches = 6
)

var requestCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "lensfolio_gallery_requests_total",
		Help: "Photo API requests by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// Fetcher loads all collections with their photos.
type Fetcher interface {
	Collections(ctx context.Context) []Collection
}

// Config of the API client.
type Config struct {
	AccessKey  string
	Username   string
	BaseURL    string
	PerPage    int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client of the photo API. Failed calls never surface: a failed collection
// listing yields no collections, a failed photo listing an empty collection.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccessKey == "" || cfg.Username == "" {
		return nil, ErrNotConfigured
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{cfg: cfg, http: hc}, nil
}

// Collections lists the collections of the configured user and fetches the
// photos of every collection concurrently.
func (c *Client) Collections(ctx context.Context) []Collection {
	collections, _ := c.Fetch(ctx)
	return collections
}

// Fetch is Collections that also reports whether every API call succeeded.
func (c *Client) Fetch(ctx context.Context) ([]Collection, bool) {
	var collections []Collection

	err := c.get(ctx, "collections", "/users/"+url.PathEscape(c.cfg.Username)+"/collections", &collections)
	if err != nil {
		log.Error().Err(err).Str("username", c.cfg.Username).Msg("failed to list photo collections")
		return []Collection{}, false
	}

	var failed atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i := range collections {
		collections[i].Photos = []Photo{}

		g.Go(func() error {
			var photos []Photo

			path := "/collections/" + url.PathEscape(collections[i].ID) + "/photos"
			if errGet := c.get(gctx, "photos", path, &photos); errGet != nil {
				log.Warn().Err(errGet).Str("collection", collections[i].ID).Msg("failed to list collection photos")
				failed.Store(true)

				return nil
			}

			if photos != nil {
				collections[i].Photos = photos
			}

			return nil
		})
	}

	_ = g.Wait()

	return collections, !failed.Load()
}

func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path + "?per_page=" + strconv.Itoa(c.cfg.PerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Client-ID "+c.cfg.AccessKey)
	req.Header.Set("Accept-Version", "v1")

	outcome := "error"
	defer func() {
		requestCounter.WithLabelValues(endpoint, outcome).Inc()
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("photo api request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(out); err != nil { //nolint:mnd
		return fmt.Errorf("failed to decode response: %w", err)
	}

	outcome = "ok"

	return nil
}
