package admin_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/gallery"
	"github.com/lensfolio/lensfolio/internal/web/handler/admin"
	"github.com/lensfolio/lensfolio/internal/web/webtest"
)

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) Collections(context.Context) []gallery.Collection {
	f.calls++
	return []gallery.Collection{{ID: "1", Title: "Nature", Photos: []gallery.Photo{{ID: "a"}}}}
}

func TestRefreshGallery(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := gallery.NewCache(fetcher, 0)

	app := webtest.App(&webtest.Views{})
	deps := webtest.Deps(t, webtest.NewStore())
	deps.Gallery = cache

	require.NoError(t, new(admin.Service).Init(app, deps))

	cache.Collections(context.Background())
	cache.Collections(context.Background())
	require.Equal(t, 1, fetcher.calls)

	resp := webtest.Do(t, app, http.MethodPost, admin.RefreshGalleryPath, "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, admin.Path+"?refreshed=1", resp.Header.Get(fiber.HeaderLocation))

	cache.Collections(context.Background())
	assert.Equal(t, 2, fetcher.calls)
}

func TestRefreshGallery_WithoutGallery(t *testing.T) {
	app := webtest.App(&webtest.Views{})
	deps := webtest.Deps(t, webtest.NewStore())

	require.NoError(t, new(admin.Service).Init(app, deps))

	resp := webtest.Do(t, app, http.MethodPost, admin.RefreshGalleryPath, "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestGet(t *testing.T) {
	views := &webtest.Views{}
	app := webtest.App(views)
	deps := webtest.Deps(t, webtest.NewStore())

	require.NoError(t, new(admin.Service).Init(app, deps))

	resp := webtest.Do(t, app, http.MethodGet, admin.Path+"?refreshed=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	name, data := views.Last()
	assert.Equal(t, admin.TemplateName, name)
	assert.Equal(t, true, data["Refreshed"])
	assert.Equal(t, "", data["Email"])
}
