package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/contact"
	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/gallery"
	"github.com/lensfolio/lensfolio/internal/imageurl"
)

// ErrNilDeps is returned by Init when app or deps are missing.
var ErrNilDeps = errors.New(ErrNilACDFatalLogMsg)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps) error
}

// IdentityProvider runs the OAuth sign-in.
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Profile, error)
}

// ContactSubmitter delivers contact form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, form contact.Form) error
}

// Deps are the services shared by the handlers. Gallery, Contact and Identity
// may be nil when the integration is not configured.
type Deps struct {
	Config     *config.Config
	Content    *content.Repository
	Images     imageurl.Builder
	Gallery    gallery.Fetcher
	Contact    ContactSubmitter
	Sessions   *auth.Sessions
	Identity   IdentityProvider
	Authorizer auth.Authorizer
}

// Check returns ErrNilDeps when app, deps or the required services are nil.
func Check(app *fiber.App, deps *Deps) error {
	if app == nil || deps == nil || deps.Config == nil || deps.Content == nil {
		return ErrNilDeps
	}

	return nil
}
