// Package oidc handles the OpenID Connect callback of the admin sign-in.
//
// The callback redeems the single use state token, exchanges the code for a
// verified profile, asks the authorizer whether the address may sign in and
// creates the admin session. Failures are sent back to the sign-in page as
// error codes:
//
//	GET /admin/login/callback?code=...&state=...
//	  -> 302 /admin/editor                        signed in
//	  -> 302 /admin/login?error=AccessDenied      address not allowed
//	  -> 302 /admin/login?error=OAuthCallback     state, exchange or session failure
package oidc
