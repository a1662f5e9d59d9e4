package auth

import "errors"

var (
	// ErrNoIDToken is returned when the OAuth2 token response doesn't contain an ID token.
	// This typically indicates a misconfigured OIDC provider or an incomplete authentication flow.
	ErrNoIDToken = errors.New("no id_token in token response")

	// ErrEmailMissing is returned when the ID token carries no email claim.
	ErrEmailMissing = errors.New("id token has no email")

	// ErrEmailNotVerified is returned when the provider did not verify the email address.
	ErrEmailNotVerified = errors.New("email address is not verified")

	// ErrNotAuthorized is returned when no authorizer accepts the email address.
	ErrNotAuthorized = errors.New("email address is not authorized")

	// ErrSecretTooShort is returned when the token signing secret is shorter than 32 bytes.
	ErrSecretTooShort = errors.New("session secret must be at least 32 bytes")

	// ErrInvalidToken is returned for tokens with a bad signature, format or role.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrTokenExpired is returned for tokens past their expiry.
	ErrTokenExpired = errors.New("session token expired")

	// ErrTokenRevoked is returned for tokens whose session was deleted.
	ErrTokenRevoked = errors.New("session token revoked")

	// ErrInvalidState is returned when an OAuth state token is unknown, used or expired.
	ErrInvalidState = errors.New("invalid state token")

	// ErrUserNotFound is returned when a user cannot be found in the directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrMultipleUsersFound is returned when a query expected one user but found multiple.
	// This typically indicates a misconfigured LDAP filter or duplicate entries.
	ErrMultipleUsersFound = errors.New("multiple users found")
)
