package gallery

import "errors"

var (
	// ErrNotConfigured is returned when access key or username are missing.
	ErrNotConfigured = errors.New("photo api access key and username are required")

	// ErrUnexpectedStatus is returned for non 2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected photo api response")
)
