// Package webtest provides fakes for testing the web handlers without a
// database, template files or external services.
package webtest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/imageurl"
	"github.com/lensfolio/lensfolio/internal/web/handler"
)

// Secret is a session secret long enough for auth.NewTokenIssuer.
const Secret = "0123456789abcdef0123456789abcdef"

// Views is a minimal fiber.Views engine. It writes the "error" field of the
// data if present, the template name otherwise, and remembers the last render.
type Views struct {
	mu   sync.Mutex
	name string
	data fiber.Map
}

func (*Views) Load() error { return nil }

func (v *Views) Render(w io.Writer, name string, data any, _ ...string) error {
	m, _ := data.(fiber.Map)

	v.mu.Lock()
	v.name, v.data = name, m
	v.mu.Unlock()

	if e, ok := m["error"].(string); ok && e != "" {
		_, _ = io.WriteString(w, e)
		return nil
	}

	_, _ = io.WriteString(w, name)

	return nil
}

// Last returns the name and data of the last render.
func (v *Views) Last() (string, fiber.Map) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.data
}

// Storage is an in-memory fiber.Storage honoring expirations.
type Storage struct {
	mu   sync.Mutex
	data map[string]entry
}

type entry struct {
	val []byte
	exp time.Time
}

var _ fiber.Storage = (*Storage)(nil)

func (s *Storage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok || (!e.exp.IsZero() && time.Now().After(e.exp)) {
		return nil, nil
	}

	return append([]byte(nil), e.val...), nil
}

func (s *Storage) Set(key string, val []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string]entry)
	}

	e := entry{val: append([]byte(nil), val...)}
	if ttl > 0 {
		e.exp = time.Now().Add(ttl)
	}

	s.data[key] = e

	return nil
}

func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *Storage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil

	return nil
}

func (*Storage) Close() error { return nil }

// Store is an in-memory content.Store. PutErr makes every write fail.
type Store struct {
	mu     sync.Mutex
	docs   map[content.DocumentType][]byte
	puts   map[content.DocumentType]int
	PutErr error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		docs: make(map[content.DocumentType][]byte),
		puts: make(map[content.DocumentType]int),
	}
}

func (s *Store) Get(_ context.Context, t content.DocumentType) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.docs[t]
	if !ok {
		return nil, content.ErrDocumentNotFound
	}

	return body, nil
}

func (s *Store) Put(_ context.Context, t content.DocumentType, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PutErr != nil {
		return s.PutErr
	}

	s.docs[t] = body
	s.puts[t]++

	return nil
}

// Puts returns how often a document of type t was written.
func (s *Store) Puts(t content.DocumentType) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.puts[t]
}

// Config returns a configuration for tests.
func Config() *config.Config {
	return &config.Config{
		Title: "Test",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
			Session: config.Session{
				ExpiryTime: time.Hour,
				Secret:     Secret,
			},
		},
		Auth: config.Auth{AdminEmail: "admin@example.com"},
	}
}

// Deps returns handler dependencies over Store and Storage with a session
// manager and an allow-list of the configured admin.
func Deps(t *testing.T, store content.Store) *handler.Deps {
	t.Helper()

	cfg := Config()

	issuer, err := auth.NewTokenIssuer(cfg.Webserver.Session.Secret, cfg.Webserver.Session.ExpiryTime)
	require.NoError(t, err)

	return &handler.Deps{
		Config:     cfg,
		Content:    content.NewRepository(store, 0),
		Images:     imageurl.Builder{ProjectID: "proj", Dataset: "production"},
		Sessions:   auth.NewSessions(issuer, &Storage{}),
		Authorizer: auth.NewStaticAllowList(cfg.Auth.AdminEmail),
	}
}

// App returns a fiber app rendering with views.
func App(views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{Views: views})
}

// Do runs a request against app.
func Do(t *testing.T, app *fiber.App, method, target, body string, header ...string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// ReadBody returns the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
