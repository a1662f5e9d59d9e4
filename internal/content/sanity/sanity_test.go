package sanity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/content/sanity"
)

// fakeDataset serves the query and mutate endpoints from a map.
type fakeDataset struct {
	mu       sync.Mutex
	docs     map[string]json.RawMessage
	auth     []string
	mutation []byte
}

func (f *fakeDataset) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /v2024-01-01/data/query/production", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.auth = append(f.auth, r.Header.Get("Authorization"))
		assert.Equal(t, "published", r.URL.Query().Get("perspective"))

		var result json.RawMessage = []byte("null")

		for id, doc := range f.docs {
			if r.URL.Query().Get("query") == sanity.Query(content.DocumentType(id)) {
				result = doc
			}
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"result": result, "ms": 1})
	})

	mux.HandleFunc("POST /v2024-01-01/data/mutate/production", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.auth = append(f.auth, r.Header.Get("Authorization"))
		f.mutation, _ = io.ReadAll(r.Body)

		var req struct {
			Mutations []struct {
				CreateOrReplace map[string]json.RawMessage `json:"createOrReplace"`
			} `json:"mutations"`
		}

		if err := json.Unmarshal(f.mutation, &req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		for _, m := range req.Mutations {
			var id string
			_ = json.Unmarshal(m.CreateOrReplace["_id"], &id)
			f.docs[id], _ = json.Marshal(m.CreateOrReplace)
		}

		_, _ = w.Write([]byte(`{"transactionId":"t1","results":[]}`))
	})

	return mux
}

func newTestClient(t *testing.T, f *fakeDataset) *sanity.Client {
	t.Helper()

	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	c, err := sanity.New(sanity.Config{
		ProjectID: "2vi9cyd4",
		Dataset:   "production",
		Token:     "sk-test",
		BaseURL:   srv.URL,
	})
	require.NoError(t, err)

	return c
}

func TestNew_RequiresProjectAndDataset(t *testing.T) {
	_, err := sanity.New(sanity.Config{Dataset: "production"})
	require.ErrorIs(t, err, sanity.ErrNotConfigured)
}

func TestQuery(t *testing.T) {
	assert.Equal(t, `*[_type == "homepage" && _id == "homepage"][0]`, sanity.Query(content.TypeHomepage))
}

func TestClient_GetAndPut(t *testing.T) {
	ctx := context.Background()
	f := &fakeDataset{docs: map[string]json.RawMessage{}}
	c := newTestClient(t, f)

	_, err := c.Get(ctx, content.TypeHomepage)
	require.ErrorIs(t, err, content.ErrDocumentNotFound)

	require.NoError(t, c.Put(ctx, content.TypeHomepage, []byte(`{"hero":{"title":"Hi"}}`)))
	assert.JSONEq(t,
		`{"mutations":[{"createOrReplace":{"_id":"homepage","_type":"homepage","hero":{"title":"Hi"}}}]}`,
		string(f.mutation),
	)

	body, err := c.Get(ctx, content.TypeHomepage)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"homepage","_type":"homepage","hero":{"title":"Hi"}}`, string(body))

	for _, a := range f.auth {
		assert.Equal(t, "Bearer sk-test", a)
	}
}

func TestClient_PutRejectsNonObject(t *testing.T) {
	f := &fakeDataset{docs: map[string]json.RawMessage{}}
	c := newTestClient(t, f)

	for _, body := range []string{`[1]`, `null`, `"text"`, ``} {
		require.ErrorIs(t, c.Put(context.Background(), content.TypeHomepage, []byte(body)), sanity.ErrNotObject, body)
	}

	assert.Empty(t, f.docs)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := sanity.New(sanity.Config{ProjectID: "p", Dataset: "production", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), content.TypeAboutPage)
	require.ErrorIs(t, err, sanity.ErrUnexpectedStatus)

	// the repository turns every failure into nil
	assert.Nil(t, content.NewRepository(c, time.Second).AboutPage(context.Background()))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := sanity.New(sanity.Config{ProjectID: "p", Dataset: "production", BaseURL: srv.URL})
	require.NoError(t, err)

	repo := content.NewRepository(c, 50*time.Millisecond)

	start := time.Now()
	assert.Nil(t, repo.SiteSettings(context.Background()))
	assert.Less(t, time.Since(start), 5*time.Second)
}
