package content

import "errors"

var (
	// ErrDocumentNotFound is returned by a Store when no document of the type exists.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnknownDocumentType is returned for a type other than homepage, aboutPage or siteSettings.
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrNilDocument is returned when saving a nil document.
	ErrNilDocument = errors.New("document is nil")
)
