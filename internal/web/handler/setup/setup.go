// Package setup reports which integrations are configured. Values are never
// rendered, only whether they are set.
package setup

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the setup page.
	Path = handler.AdminPath + "/setup"

	// TemplateName is the name of the setup template.
	TemplateName = "admin/setup"
)

// Item is one configuration check.
type Item struct {
	Group      string `json:"group"`
	Name       string `json:"name"`
	Env        string `json:"env,omitempty"`
	Configured bool   `json:"configured"`
}

// Service is the setup handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the setup handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Checks lists the configuration state of cfg.
func Checks(cfg *config.Config) []Item {
	return []Item{
		{Group: "Content", Name: "Backend (" + cfg.Content.Backend + ")", Configured: cfg.Content.Backend != ""},
		{Group: "Content", Name: "Project ID", Env: "SANITY_PROJECT_ID", Configured: cfg.Content.ProjectID != ""},
		{Group: "Content", Name: "Dataset", Env: "SANITY_DATASET", Configured: cfg.Content.Dataset != ""},
		{Group: "Content", Name: "API token", Env: "SANITY_API_TOKEN", Configured: cfg.Content.Token != ""},
		{Group: "Sign-in", Name: "OAuth client ID", Env: "GOOGLE_CLIENT_ID", Configured: cfg.Auth.OIDC.ClientID != ""},
		{Group: "Sign-in", Name: "OAuth client secret", Env: "GOOGLE_CLIENT_SECRET", Configured: cfg.Auth.OIDC.ClientSecret != ""},
		{Group: "Sign-in", Name: "Session secret", Env: "SESSION_SECRET", Configured: cfg.Webserver.Session.Secret != ""},
		{
			Group: "Sign-in", Name: "Allowed addresses", Env: "ADMIN_EMAIL",
			Configured: cfg.Auth.AdminEmail != "" || len(cfg.Auth.AllowList) > 0 || cfg.Auth.LDAP.Enabled,
		},
		{Group: "Email", Name: "API key", Env: "RESEND_API_KEY", Configured: cfg.Mail.APIKey != ""},
		{Group: "Email", Name: "Recipients", Configured: len(cfg.Mail.To) > 0},
		{Group: "Gallery", Name: "Access key", Env: "UNSPLASH_ACCESS_KEY", Configured: cfg.Gallery.AccessKey != ""},
		{Group: "Gallery", Name: "Username", Env: "UNSPLASH_USERNAME", Configured: cfg.Gallery.Username != ""},
	}
}

// Get renders the setup report.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewAdminContext("Setup", "setup").
		AddBreadcrumb("Setup", Path, true)

	items := Checks(s.deps.Config)

	complete := true
	for _, it := range items {
		complete = complete && it.Configured
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      nav.Title(s.deps.Config.Title),
		"Items":      items,
		"Complete":   complete,
	}, handler.AdminLayout)
}
