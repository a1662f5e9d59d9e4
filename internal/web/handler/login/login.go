package login

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the login page.
	Path = handler.LoginPath

	// ProviderPath starts the Google sign-in.
	ProviderPath = Path + "/google"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Get("/google", s.Start)
	})

	return nil
}

// RedirectWithError sends the browser back to the login page with code.
func RedirectWithError(c *fiber.Ctx, code string) error {
	return c.Redirect(Path + "?" + url.Values{"error": {code}}.Encode())
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewAdminContext("Sign in", "login")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      nav.Title(s.deps.Config.Title),
		"error":      Message(c.Query("error")),
		"enabled":    s.deps.Identity != nil && s.deps.Sessions != nil,
	}, handler.AdminLayout)
}

// Start redirects to the identity provider.
func (s *Service) Start(c *fiber.Ctx) error {
	if s.deps.Identity == nil || s.deps.Sessions == nil {
		return RedirectWithError(c, CodeConfiguration)
	}

	state, err := s.deps.Sessions.NewState()
	if err != nil {
		log.Error().Err(err).Msg("failed to create oauth state")
		return RedirectWithError(c, CodeOAuthCallback)
	}

	return c.Redirect(s.deps.Identity.AuthURL(state))
}
