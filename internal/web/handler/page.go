package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

// Page returns the template data shared by the public pages: the site
// settings, with defaults for missing fields, and the navigation.
func Page(c *fiber.Ctx, deps *Deps, nav *navigation.Context) fiber.Map {
	site := content.SiteSettingsOrDefault(deps.Content.SiteSettings(c.UserContext()))

	return fiber.Map{
		"Site":       site,
		"Navigation": nav,
		"Title":      nav.Title(site.SiteInfo.SiteTitle),
		"Images":     deps.Images,
	}
}
