// Package gallery renders the photo gallery and serves its JSON state for the
// client script.
package gallery

import (
	"github.com/gofiber/fiber/v2"

	photos "github.com/lensfolio/lensfolio/internal/gallery"
	"github.com/lensfolio/lensfolio/internal/imageurl"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the gallery page.
	Path = handler.RootPath + "gallery"

	// APIPath serves the gallery state as JSON.
	APIPath = handler.RootPath + "api/gallery"

	// TemplateName is the name of the gallery template.
	TemplateName = "gallery"

	thumbnailWidth = 800
)

// Photo is a photo prepared for rendering.
type Photo struct {
	ID        string `json:"id"`
	Alt       string `json:"alt"`
	Thumbnail string `json:"thumbnail"`
	Src       string `json:"src"`
	SrcSet    string `json:"srcset"`
	Credit    string `json:"credit,omitempty"`
}

// State is the gallery state of one filter.
type State struct {
	Filters []string `json:"filters"`
	Active  string   `json:"active"`
	Query   string   `json:"query"`
	Photos  []Photo  `json:"photos"`
}

// Service is the gallery handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the gallery handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)
	app.Get(APIPath, s.API)

	return nil
}

func (s *Service) state(c *fiber.Ctx) State {
	var collections []photos.Collection
	if s.deps.Gallery != nil {
		collections = s.deps.Gallery.Collections(c.UserContext())
	}

	view := photos.NewView(collections, c.Query(photos.QueryParam))

	return NewState(view)
}

// NewState converts a view for rendering.
func NewState(view *photos.View) State {
	out := State{
		Filters: view.Filters(),
		Active:  view.ActiveFilter,
		Query:   view.Query(),
		Photos:  make([]Photo, 0, len(view.Photos)),
	}

	for _, p := range view.Photos {
		out.Photos = append(out.Photos, Photo{
			ID:        p.ID,
			Alt:       p.Alt(),
			Thumbnail: imageurl.Sized(p.URLs.Regular, thumbnailWidth),
			Src:       p.URLs.Regular,
			SrcSet:    imageurl.SrcSet(p.URLs.Full, imageurl.LightboxWidths),
			Credit:    p.User.Name,
		})
	}

	return out
}

// Get renders the gallery page for the filter in the query string.
func (s *Service) Get(c *fiber.Ctx) error {
	data := handler.Page(c, s.deps, navigation.NewContext("Gallery", "gallery"))
	data["Gallery"] = s.state(c)

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// API returns the gallery state as JSON.
func (s *Service) API(c *fiber.Ctx) error {
	return c.JSON(s.state(c))
}
