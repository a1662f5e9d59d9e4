// Package login renders the admin sign-in page and starts the OAuth flow.
//
// This file defines the error codes passed to the sign-in page.
package login

const (
	// CodeAccessDenied is set when the signed-in address is not allowed.
	CodeAccessDenied = "AccessDenied"

	// CodeOAuthCallback is set when the provider callback failed.
	CodeOAuthCallback = "OAuthCallback"

	// CodeConfiguration is set when no identity provider is configured.
	CodeConfiguration = "Configuration"
)

// Message maps an error code of the sign-in flow to the text shown on the
// sign-in page. Empty codes map to no message.
func Message(code string) string {
	switch code {
	case "":
		return ""
	case CodeAccessDenied:
		return "Access denied. You are not authorized to access this CMS. Please contact the administrator."
	case CodeOAuthCallback:
		return "Authentication failed. Please try again."
	case CodeConfiguration:
		return "Sign-in is not configured. Please contact the administrator."
	default:
		return "An authentication error occurred. Please try again."
	}
}
