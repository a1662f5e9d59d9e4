package content

import "context"

// Store persists raw JSON documents by type. Put replaces the whole document.
type Store interface {
	Get(ctx context.Context, t DocumentType) ([]byte, error)
	Put(ctx context.Context, t DocumentType, body []byte) error
}

// Exister is implemented by stores that can check for a document without
// reading its body.
type Exister interface {
	Exists(ctx context.Context, t DocumentType) (bool, error)
}
