package home_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/handler/home"
	"github.com/lensfolio/lensfolio/internal/web/webtest"
)

func TestGet_MergesStoredHomepageOverDefaults(t *testing.T) {
	views := &webtest.Views{}
	app := webtest.App(views)
	store := webtest.NewStore()
	require.NoError(t, store.Put(context.Background(), content.TypeHomepage, []byte(`{"hero":{"title":"Mine"}}`)))

	require.NoError(t, new(home.Service).Init(app, webtest.Deps(t, store)))

	resp := webtest.Do(t, app, http.MethodGet, home.Path, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, home.TemplateName, webtest.ReadBody(t, resp))

	_, data := views.Last()
	h, ok := data["Home"].(*content.Homepage)
	require.True(t, ok)
	assert.Equal(t, "Mine", h.Hero.Title)
	assert.Equal(t, content.DefaultHomepage().Hero.Tagline, h.Hero.Tagline)
}

func TestGet_DefaultsWithoutDocument(t *testing.T) {
	views := &webtest.Views{}
	app := webtest.App(views)

	require.NoError(t, new(home.Service).Init(app, webtest.Deps(t, webtest.NewStore())))

	webtest.Do(t, app, http.MethodGet, home.Path, "")

	_, data := views.Last()
	assert.Equal(t, content.DefaultHomepage(), data["Home"])
}
