// Package session keeps the admin session token in a cookie and exposes the
// verified claims to handlers.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
)

const (
	// DefaultCookieName is used when no cookie name is configured.
	DefaultCookieName = "lensfolio_session"

	// LocalClaims is the fiber.Locals key of the verified claims.
	LocalClaims = "sessionClaims"
)

// CookieName returns the configured cookie name.
func CookieName(cfg *config.Config) string {
	if cfg.Webserver.Session.CookieName != "" {
		return cfg.Webserver.Session.CookieName
	}

	return DefaultCookieName
}

// Token returns the session token of the request.
func Token(c *fiber.Ctx, cfg *config.Config) string {
	return c.Cookies(CookieName(cfg))
}

// SetCookie stores token in the session cookie.
func SetCookie(c *fiber.Ctx, cfg *config.Config, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName(cfg),
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   !cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie.
func ClearCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName(cfg),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   !cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SetClaims stores verified claims for the rest of the request.
func SetClaims(c *fiber.Ctx, claims auth.Claims) {
	c.Locals(LocalClaims, claims)
}

// Claims returns the verified claims of the request.
func Claims(c *fiber.Ctx) (auth.Claims, bool) {
	claims, ok := c.Locals(LocalClaims).(auth.Claims)
	return claims, ok
}
