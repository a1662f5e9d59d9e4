// Package home renders the landing page.
package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home"
)

// Service is the home handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the homepage document, falling back to defaults per field.
func (s *Service) Get(c *fiber.Ctx) error {
	data := handler.Page(c, s.deps, navigation.NewContext("", "home"))
	data["Home"] = content.HomepageOrDefault(s.deps.Content.Homepage(c.UserContext()))

	return c.Render(TemplateName, data, handler.BaseLayout)
}
