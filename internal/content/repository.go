package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var saveCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "lensfolio_content_saves_total",
		Help: "Content document saves by type and outcome.",
	},
	[]string{"type", "outcome"},
)

// Repository reads and writes the singleton documents. Reads never fail:
// every error is logged and reported as nil, callers fall back to defaults.
type Repository struct {
	store   Store
	timeout time.Duration
}

// NewRepository creates a repository over store. A positive timeout bounds
// every store call.
func NewRepository(store Store, timeout time.Duration) *Repository {
	return &Repository{store: store, timeout: timeout}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, r.timeout)
}

// Get fetches the document of type t or nil.
func (r *Repository) Get(ctx context.Context, t DocumentType) Document {
	doc := New(t)
	if doc == nil {
		log.Warn().Str("type", string(t)).Msg("fetch of unknown document type")
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	body, err := r.store.Get(ctx, t)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			log.Error().Err(err).Str("type", string(t)).Msg("fetch content document")
		}

		return nil
	}

	if err = json.Unmarshal(body, doc); err != nil {
		log.Error().Err(err).Str("type", string(t)).Msg("decode content document")
		return nil
	}

	return doc
}

// Homepage returns the stored homepage or nil.
func (r *Repository) Homepage(ctx context.Context) *Homepage {
	h, _ := r.Get(ctx, TypeHomepage).(*Homepage)
	return h
}

// AboutPage returns the stored about page or nil.
func (r *Repository) AboutPage(ctx context.Context) *AboutPage {
	a, _ := r.Get(ctx, TypeAboutPage).(*AboutPage)
	return a
}

// SiteSettings returns the stored site settings or nil.
func (r *Repository) SiteSettings(ctx context.Context) *SiteSettings {
	s, _ := r.Get(ctx, TypeSiteSettings).(*SiteSettings)
	return s
}

// Save replaces the stored document of doc's type with doc. Identity fields
// are set from the type, omitted fields are stored as empty.
func (r *Repository) Save(ctx context.Context, doc Document) (err error) {
	if doc == nil {
		return ErrNilDocument
	}

	t := doc.DocumentType()

	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}

		saveCounter.WithLabelValues(string(t), outcome).Inc()
	}()

	doc.setIdentity()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.store.Put(ctx, t, body); err != nil {
		return fmt.Errorf("save %s: %w", t, err)
	}

	log.Info().Str("type", string(t)).Msg("content document saved")

	return nil
}

// SaveHomepage replaces the homepage.
func (r *Repository) SaveHomepage(ctx context.Context, h *Homepage) error {
	if h == nil {
		return ErrNilDocument
	}

	return r.Save(ctx, h)
}

// SaveAboutPage replaces the about page.
func (r *Repository) SaveAboutPage(ctx context.Context, a *AboutPage) error {
	if a == nil {
		return ErrNilDocument
	}

	return r.Save(ctx, a)
}

// SaveSiteSettings replaces the site settings.
func (r *Repository) SaveSiteSettings(ctx context.Context, s *SiteSettings) error {
	if s == nil {
		return ErrNilDocument
	}

	return r.Save(ctx, s)
}

// Decode parses a complete document of type t from JSON.
func Decode(t DocumentType, body []byte) (Document, error) {
	doc := New(t)
	if doc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, t)
	}

	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t, err)
	}

	return doc, nil
}
