package daemon

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/content"
)

// seed writes the default documents into an empty database store. The hosted
// store is only populated on request, see the populate command.
func seed(ctx context.Context, cfg *config.Config, store content.Store) {
	if cfg.Content.Backend != config.BackendDB {
		return
	}

	written, err := content.Populate(ctx, store, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed default content")
		return
	}

	if len(written) > 0 {
		log.Info().Interface("types", written).Msg("seeded default content")
	}
}
