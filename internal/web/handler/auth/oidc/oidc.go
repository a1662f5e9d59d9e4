package oidc

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/handler/login"
	"github.com/lensfolio/lensfolio/internal/web/session"
)

const (
	// CallbackPath is the path for OIDC callback.
	CallbackPath = login.Path + "/callback"
)

// Service is the OIDC handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init initializes the OIDC handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if err := handler.Check(app, deps); err != nil {
		return err
	}

	s.deps = deps

	app.Get(CallbackPath, s.Callback)

	return nil
}

// Callback handles the OIDC callback.
func (s *Service) Callback(c *fiber.Ctx) error {
	if s.deps.Identity == nil || s.deps.Sessions == nil || s.deps.Authorizer == nil {
		return login.RedirectWithError(c, login.CodeConfiguration)
	}

	// provider side errors, e.g. the user cancelled the consent screen
	if providerErr := c.Query("error"); providerErr != "" {
		log.Warn().Str("error", providerErr).Msg("identity provider returned an error")
		return login.RedirectWithError(c, login.CodeOAuthCallback)
	}

	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		log.Error().Msg("missing code or state in OIDC callback")
		return login.RedirectWithError(c, login.CodeOAuthCallback)
	}

	if err := s.deps.Sessions.ConsumeState(state); err != nil {
		log.Error().Err(err).Msg("invalid oauth state")
		return login.RedirectWithError(c, login.CodeOAuthCallback)
	}

	profile, err := s.deps.Identity.Exchange(c.UserContext(), code)
	if err != nil {
		log.Error().Err(err).Msg("OIDC authentication failed")
		return login.RedirectWithError(c, login.CodeOAuthCallback)
	}

	allowed, err := s.deps.Authorizer.Authorize(c.UserContext(), profile.Email)
	if err != nil {
		log.Error().Err(err).Str("email", profile.Email).Msg("authorization check failed")
		return login.RedirectWithError(c, login.CodeAccessDenied)
	}

	if !allowed {
		log.Warn().Str("email", profile.Email).Msg("sign-in refused, address not allowed")
		return login.RedirectWithError(c, login.CodeAccessDenied)
	}

	token, claims, err := s.deps.Sessions.Create(profile.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")
		return login.RedirectWithError(c, login.CodeOAuthCallback)
	}

	session.SetCookie(c, s.deps.Config, token, s.deps.Sessions.TTL())

	log.Info().Str("email", claims.Email).Str("session", claims.ID).Msg("admin signed in")

	return c.Redirect(handler.EditorPath)
}
