// Package auth provides the admin gate of the web application.
//
// Every request below /admin needs a session cookie whose token verifies and
// whose session record still exists. Pages redirect to the sign-in page when
// it does not, the JSON API under /admin/api answers 401. The sign-in routes
// stay public, and a signed-in admin opening the sign-in page is sent to the
// editor.
//
// Usage:
//
//	app.Use(authmiddleware.New(cfg, sessions))
package auth
