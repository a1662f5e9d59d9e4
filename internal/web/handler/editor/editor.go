// Package editor serves the admin content editor and its JSON API.
package editor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the editor page.
	Path = handler.EditorPath

	// APIPath reads and replaces one document.
	APIPath = handler.AdminAPIPath + "/content/:type"

	// TemplateName is the name of the editor template.
	TemplateName = "admin/editor"

	resultSuccess = "success"
	resultError   = "error"
)

// Labels of the document types in the editor.
var Labels = map[content.DocumentType]string{ //nolint:gochecknoglobals
	content.TypeHomepage:     "Homepage",
	content.TypeAboutPage:    "About Page",
	content.TypeSiteSettings: "Site Settings",
}

// Draft is the editable state of one document.
type Draft struct {
	Type     content.DocumentType `json:"type"`
	Label    string               `json:"label"`
	Document content.Document     `json:"document"`
	JSON     string               `json:"-"`
	Fallback bool                 `json:"fallback"`
	Warnings []content.Warning    `json:"warnings"`
}

// Result is the answer of a save.
type Result struct {
	Type     string            `json:"type"`
	Message  string            `json:"message"`
	Warnings []content.Warning `json:"warnings,omitempty"`
}

// Service is the editor handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the editor handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)
	app.Get(APIPath, s.GetDocument)
	app.Put(APIPath, s.PutDocument)

	return nil
}

func (s *Service) draft(ctx context.Context, t content.DocumentType) Draft {
	d := Draft{Type: t, Label: Labels[t]}

	d.Document = s.deps.Content.Get(ctx, t)
	if d.Document == nil {
		d.Document = content.Default(t)
		d.Fallback = true
	}

	d.Warnings = content.Validate(d.Document)
	if d.Warnings == nil {
		d.Warnings = []content.Warning{}
	}

	body, err := json.MarshalIndent(d.Document, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("type", string(t)).Msg("failed to encode draft")
	}

	d.JSON = string(body)

	return d
}

// Get renders the editor with all documents, fetched concurrently.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewAdminContext("Editor", "editor").
		AddBreadcrumb("Editor", Path, true)

	drafts := make([]Draft, len(content.Types))

	ctx := c.UserContext()

	var g errgroup.Group

	for i, t := range content.Types {
		g.Go(func() error {
			drafts[i] = s.draft(ctx, t)
			return nil
		})
	}

	_ = g.Wait()

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      nav.Title(s.deps.Config.Title),
		"Drafts":     drafts,
	}, handler.AdminLayout)
}

func documentType(c *fiber.Ctx) (content.DocumentType, bool) {
	t := content.DocumentType(c.Params("type"))
	return t, t.Valid()
}

// GetDocument returns the stored document or its defaults.
func (s *Service) GetDocument(c *fiber.Ctx) error {
	t, ok := documentType(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(Result{Type: resultError, Message: "Unknown document type"})
	}

	return c.JSON(s.draft(c.UserContext(), t))
}

// PutDocument replaces the document of the route's type with the body.
func (s *Service) PutDocument(c *fiber.Ctx) error {
	t, ok := documentType(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(Result{Type: resultError, Message: "Unknown document type"})
	}

	doc, err := content.Decode(t, c.Body())
	if err != nil {
		log.Debug().Err(err).Str("type", string(t)).Msg("invalid document body")

		return c.Status(fiber.StatusBadRequest).JSON(Result{
			Type:    resultError,
			Message: fmt.Sprintf("Invalid %s document", Labels[t]),
		})
	}

	if err = s.deps.Content.Save(c.UserContext(), doc); err != nil {
		log.Error().Err(err).Str("type", string(t)).Msg("failed to save document")

		return c.Status(fiber.StatusInternalServerError).JSON(Result{
			Type:    resultError,
			Message: fmt.Sprintf("Failed to save %s", Labels[t]),
		})
	}

	return c.JSON(Result{
		Type:     resultSuccess,
		Message:  fmt.Sprintf("%s saved successfully", Labels[t]),
		Warnings: content.Validate(doc),
	})
}
