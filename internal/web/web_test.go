package web_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/web"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/session"
	"github.com/lensfolio/lensfolio/internal/web/webtest"
)

func newService(t *testing.T, views fiber.Views) (*web.Service, *handler.Deps) {
	t.Helper()

	deps := webtest.Deps(t, webtest.NewStore())
	deps.Config.Webserver.DisableRecover = true

	s, err := web.New(deps, views)
	require.NoError(t, err)

	return s, deps
}

func sessionCookie(t *testing.T, deps *handler.Deps) string {
	t.Helper()

	token, _, err := deps.Sessions.Create(deps.Config.Auth.AdminEmail)
	require.NoError(t, err)

	return session.CookieName(deps.Config) + "=" + token
}

func TestNew_NilDeps(t *testing.T) {
	_, err := web.New(nil, &webtest.Views{})
	require.ErrorIs(t, err, handler.ErrNilDeps)

	_, err = web.New(&handler.Deps{}, &webtest.Views{})
	require.ErrorIs(t, err, handler.ErrNilDeps)
}

func TestCheckAlive(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	resp := webtest.Do(t, s.App, http.MethodGet, web.CheckAlivePath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", webtest.ReadBody(t, resp))
}

func TestStaticFiles(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	for _, p := range []string{"/static/css/site.css", "/static/js/gallery.js", "/static/js/contact.js", "/static/js/editor.js"} {
		resp := webtest.Do(t, s.App, http.MethodGet, p, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
	}
}

func TestMetrics(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	resp := webtest.Do(t, s.App, http.MethodGet, web.MetricsPath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicPages(t *testing.T) {
	views := &webtest.Views{}
	s, _ := newService(t, views)

	tests := map[string]string{
		"/":        "home",
		"/gallery": "gallery",
		"/about":   "about",
		"/contact": "contact",
	}

	for path, tmpl := range tests {
		resp := webtest.Do(t, s.App, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, tmpl, webtest.ReadBody(t, resp), path)
	}
}

func TestGate_AnonymousAdminPageRedirectsToLogin(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	for _, p := range []string{"/admin", "/admin/editor", "/admin/setup"} {
		resp := webtest.Do(t, s.App, http.MethodGet, p, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, p)
		assert.Equal(t, handler.LoginPath, resp.Header.Get(fiber.HeaderLocation), p)
	}
}

func TestGate_AnonymousAPIIsUnauthorized(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	resp := webtest.Do(t, s.App, http.MethodPut, "/admin/api/content/homepage", "{}",
		fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, webtest.ReadBody(t, resp))
}

func TestGate_LoginPageIsPublic(t *testing.T) {
	s, _ := newService(t, &webtest.Views{})

	resp := webtest.Do(t, s.App, http.MethodGet, handler.LoginPath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin/login", webtest.ReadBody(t, resp))
}

func TestGate_SignedInAdmin(t *testing.T) {
	views := &webtest.Views{}
	s, deps := newService(t, views)
	cookie := sessionCookie(t, deps)

	resp := webtest.Do(t, s.App, http.MethodGet, handler.EditorPath, "", "Cookie", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin/editor", webtest.ReadBody(t, resp))

	resp = webtest.Do(t, s.App, http.MethodGet, handler.AdminPath, "", "Cookie", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, data := views.Last()
	assert.Equal(t, deps.Config.Auth.AdminEmail, data["Email"])

	// the login page sends signed in admins to the editor
	resp = webtest.Do(t, s.App, http.MethodGet, handler.LoginPath, "", "Cookie", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.EditorPath, resp.Header.Get(fiber.HeaderLocation))
}

func TestGate_RevokedSessionIsRejected(t *testing.T) {
	s, deps := newService(t, &webtest.Views{})
	cookie := sessionCookie(t, deps)

	resp := webtest.Do(t, s.App, http.MethodGet, "/admin/logout", "", "Cookie", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.LoginPath, resp.Header.Get(fiber.HeaderLocation))

	resp = webtest.Do(t, s.App, http.MethodGet, handler.EditorPath, "", "Cookie", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.LoginPath, resp.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), session.CookieName(deps.Config)+"=;")
}

func TestGate_TamperedCookie(t *testing.T) {
	s, deps := newService(t, &webtest.Views{})
	cookie := sessionCookie(t, deps) + "x"

	resp := webtest.Do(t, s.App, http.MethodGet, "/admin/api/content/homepage", "", "Cookie", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTemplates_RenderWithDefaults(t *testing.T) {
	s, deps := newService(t, nil)

	for _, p := range []string{"/", "/gallery", "/about", "/contact", handler.LoginPath} {
		resp := webtest.Do(t, s.App, http.MethodGet, p, "")
		require.Equal(t, http.StatusOK, resp.StatusCode, p)

		body := webtest.ReadBody(t, resp)
		assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"), p)
	}

	resp := webtest.Do(t, s.App, http.MethodGet, "/", "")
	assert.Contains(t, webtest.ReadBody(t, resp), "<title>Nihar J Reddy Photography</title>")

	cookie := sessionCookie(t, deps)

	for _, p := range []string{handler.AdminPath, handler.EditorPath, "/admin/setup"} {
		resp = webtest.Do(t, s.App, http.MethodGet, p, "", "Cookie", cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Contains(t, webtest.ReadBody(t, resp), "<main>", p)
	}
}
