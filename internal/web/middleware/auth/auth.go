package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/session"
)

// New returns the admin gate middleware.
func New(cfg *config.Config, sessions *auth.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := strings.ToLower(c.Path())
		if !IsAdminPath(path) {
			return c.Next()
		}

		claims, valid := validate(c, cfg, sessions)
		if valid {
			session.SetClaims(c, claims)
		}

		if IsLoginPage(path) {
			if valid {
				return c.Redirect(handler.EditorPath)
			}

			return c.Next()
		}

		if IsPublicAdminPath(path) || valid {
			return c.Next()
		}

		if IsAPIPath(path) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		return c.Redirect(handler.LoginPath)
	}
}

func validate(c *fiber.Ctx, cfg *config.Config, sessions *auth.Sessions) (auth.Claims, bool) {
	token := session.Token(c, cfg)
	if token == "" || sessions == nil {
		return auth.Claims{}, false
	}

	claims, err := sessions.Validate(token)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrTokenExpired) &&
			!errors.Is(err, auth.ErrTokenRevoked) {
			log.Error().Err(err).Msg("failed to validate admin session")
		}

		session.ClearCookie(c, cfg)

		return auth.Claims{}, false
	}

	return claims, true
}

// IsAdminPath reports whether path is gated.
func IsAdminPath(path string) bool {
	return path == handler.AdminPath || strings.HasPrefix(path, handler.AdminPath+"/")
}

// IsAPIPath reports whether path belongs to the admin JSON API.
func IsAPIPath(path string) bool {
	return strings.HasPrefix(path, handler.AdminAPIPath+"/") || path == handler.AdminAPIPath
}

// IsLoginPage checks if path is the sign-in page itself.
func IsLoginPage(path string) bool {
	return strings.TrimSuffix(path, "/") == handler.LoginPath
}

// IsPublicAdminPath reports whether path is part of the sign-in or sign-out flow.
func IsPublicAdminPath(path string) bool {
	return strings.HasPrefix(path, handler.LoginPath+"/") ||
		strings.TrimSuffix(path, "/") == handler.AdminPath+"/logout"
}
