package gallery_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lensfolio/lensfolio/internal/gallery"
)

type stubFetcher struct {
	calls   atomic.Int32
	release chan struct{}
	result  []gallery.Collection
}

func (s *stubFetcher) Collections(context.Context) []gallery.Collection {
	s.calls.Add(1)

	if s.release != nil {
		<-s.release
	}

	return s.result
}

func TestCacheServesUntilExpiry(t *testing.T) {
	f := &stubFetcher{result: testCollections()}
	c := gallery.NewCache(f, time.Hour)

	now := time.Now()
	gallery.SetCacheClock(c, func() time.Time { return now })

	ctx := context.Background()

	assert.Len(t, c.Collections(ctx), 5)
	assert.Len(t, c.Collections(ctx), 5)
	assert.EqualValues(t, 1, f.calls.Load())

	now = now.Add(time.Hour + time.Second)

	c.Collections(ctx)
	assert.EqualValues(t, 2, f.calls.Load())

	c.Invalidate()
	c.Collections(ctx)
	assert.EqualValues(t, 3, f.calls.Load())
}

func TestCacheSkipsEmptyResults(t *testing.T) {
	f := &stubFetcher{result: []gallery.Collection{}}
	c := gallery.NewCache(f, 0)

	assert.Empty(t, c.Collections(context.Background()))
	assert.Empty(t, c.Collections(context.Background()))
	assert.EqualValues(t, 2, f.calls.Load())
}

func TestCacheCollapsesConcurrentMisses(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &stubFetcher{result: testCollections(), release: make(chan struct{})}
	c := gallery.NewCache(f, time.Hour)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.Len(t, c.Collections(context.Background()), 5)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.EqualValues(t, 1, f.calls.Load())
}

func TestCacheRetriesPartialResults(t *testing.T) {
	var photoCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/ana/collections", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "a", "title": "A"}, {"id": "b", "title": "B"}})
	})
	mux.HandleFunc("GET /collections/a/photos", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "a1"}})
	})
	mux.HandleFunc("GET /collections/b/photos", func(w http.ResponseWriter, _ *http.Request) {
		if photoCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "b1"}, {"id": "b2"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := gallery.NewClient(gallery.Config{
		AccessKey:  "key-1",
		Username:   "ana",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	c := gallery.NewCache(client, time.Hour)
	ctx := context.Background()

	first := c.Collections(ctx)
	require.Len(t, first, 2)
	assert.Empty(t, first[1].Photos)

	second := c.Collections(ctx)
	require.Len(t, second, 2)
	assert.Len(t, second[1].Photos, 2)

	c.Collections(ctx)
	assert.EqualValues(t, 2, photoCalls.Load(), "complete result is cached")
}
