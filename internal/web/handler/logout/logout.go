package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/session"
)

// Path of the sign-out route.
const Path = handler.AdminPath + "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout revokes the session and clears the cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	if token := session.Token(c, s.deps.Config); token != "" && s.deps.Sessions != nil {
		if err := s.deps.Sessions.Revoke(token); err != nil {
			log.Error().Err(err).Msg("failed to revoke session")
		}
	}

	session.ClearCookie(c, s.deps.Config)

	return c.Redirect(handler.LoginPath)
}
