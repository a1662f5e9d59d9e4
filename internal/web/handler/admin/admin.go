// Package admin renders the admin overview page.
package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
	"github.com/lensfolio/lensfolio/internal/web/session"
)

const (
	// Path is the path to the admin overview.
	Path = handler.AdminPath

	// TemplateName is the name of the overview template.
	TemplateName = "admin/index"

	// RefreshGalleryPath drops the cached photo collections.
	RefreshGalleryPath = handler.AdminAPIPath + "/gallery/refresh"
)

type invalidator interface {
	Invalidate()
}

// Service is the admin overview handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the admin overview handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)
	app.Post(RefreshGalleryPath, s.RefreshGallery)

	return nil
}

// Get renders the overview.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewAdminContext("Admin", "admin")
	claims, _ := session.Claims(c)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      nav.Title(s.deps.Config.Title),
		"Email":      claims.Email,
		"Types":      content.Types,
		"Refreshed":  c.Query("refreshed") != "",
	}, handler.AdminLayout)
}

// RefreshGallery drops the cached photo collections so the next gallery
// request fetches them again.
func (s *Service) RefreshGallery(c *fiber.Ctx) error {
	if cache, ok := s.deps.Gallery.(invalidator); ok {
		cache.Invalidate()
	}

	return c.Redirect(Path+"?refreshed=1", fiber.StatusSeeOther)
}
