// Package auth provides admin authentication for the content editor.
//
// Identity is delegated to an OpenID Connect provider (Google by default).
// After the provider vouches for an email address an Authorizer decides
// whether that address may edit content:
//   - StaticAllowList matches a configured, case-insensitive set of addresses
//   - DirectoryMembership looks the address up in LDAP and checks group membership
//   - AnyOf grants access if any of its authorizers does
//
// Accepted users get a signed session token (HS256, role "admin"). The token
// id is recorded in the session storage so that a sign-out revokes the token
// before it expires.
//
// Example usage:
//
//	sessions := auth.NewSessions(issuer, storage)
//	token, sess, err := sessions.Create(email)
//	...
//	sess, err = sessions.Validate(token)
package auth
