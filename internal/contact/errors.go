package contact

import "errors"

var (
	// ErrMissingFields is returned when name, email or message are empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail is returned for addresses not shaped like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrSendFailed is returned when the notification could not be delivered.
	ErrSendFailed = errors.New("failed to send email")

	// ErrAPIKeyEmpty is returned when the email API key is missing.
	ErrAPIKeyEmpty = errors.New("email api key is empty")

	// ErrNoRecipients is returned when no notification recipient is configured.
	ErrNoRecipients = errors.New("no notification recipient configured")
)
