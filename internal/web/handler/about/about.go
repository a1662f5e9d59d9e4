// Package about renders the about page.
package about

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about template.
	TemplateName = "about"
)

// Service is the about handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the about handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page document.
func (s *Service) Get(c *fiber.Ctx) error {
	data := handler.Page(c, s.deps, navigation.NewContext("About", "about"))
	data["About"] = content.AboutPageOrDefault(s.deps.Content.AboutPage(c.UserContext()))

	return c.Render(TemplateName, data, handler.BaseLayout)
}
