// Package contact renders the contact page and accepts form submissions.
package contact

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/contact"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// SendPath accepts form submissions.
	SendPath = handler.RootPath + "api/send-email"

	// TemplateName is the name of the contact template.
	TemplateName = "contact"
)

// Response messages of SendPath.
const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgMissingFields    = "Missing required fields"
	MsgInvalidEmail     = "Invalid email address"
	MsgSendFailed       = "Failed to send email"
	MsgSuccess          = "Form submitted successfully"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)
	app.All(SendPath, s.Send)

	return nil
}

// Get renders the contact page.
func (s *Service) Get(c *fiber.Ctx) error {
	data := handler.Page(c, s.deps, navigation.NewContext("Contact", "contact"))

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Send validates the submission and passes it to the send pipeline once.
func (s *Service) Send(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": MsgMethodNotAllowed})
	}

	var form contact.Form
	if err := c.BodyParser(&form); err != nil {
		log.Debug().Err(err).Msg("failed to parse contact form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": MsgMissingFields})
	}

	if err := form.Validate(); err != nil {
		msg := MsgMissingFields
		if errors.Is(err, contact.ErrInvalidEmail) {
			msg = MsgInvalidEmail
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if s.deps.Contact == nil {
		log.Error().Msg("contact form submitted but no email transport is configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgSendFailed})
	}

	if err := s.deps.Contact.Submit(c.UserContext(), form); err != nil {
		log.Error().Err(err).Msg("failed to deliver contact form")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgSendFailed})
	}

	return c.JSON(fiber.Map{"message": MsgSuccess})
}
