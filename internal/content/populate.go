package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Populate writes the default documents into store. Existing documents are
// kept unless force is set. It returns the types that were written.
func Populate(ctx context.Context, store Store, force bool) ([]DocumentType, error) {
	written := make([]DocumentType, 0, len(Types))

	for _, t := range Types {
		if !force {
			ok, err := exists(ctx, store, t)
			if err != nil {
				return written, fmt.Errorf("check %s: %w", t, err)
			}

			if ok {
				continue
			}
		}

		body, err := json.Marshal(Default(t))
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", t, err)
		}

		if err = store.Put(ctx, t, body); err != nil {
			return written, fmt.Errorf("write %s: %w", t, err)
		}

		written = append(written, t)
	}

	return written, nil
}

func exists(ctx context.Context, store Store, t DocumentType) (bool, error) {
	if e, ok := store.(Exister); ok {
		return e.Exists(ctx, t)
	}

	_, err := store.Get(ctx, t)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrDocumentNotFound):
		return false, nil
	default:
		return false, err
	}
}
