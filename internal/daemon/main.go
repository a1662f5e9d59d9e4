// Package daemon wires the configured stores, integrations and the web
// service together.
package daemon

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/db"
	"github.com/lensfolio/lensfolio/internal/imageurl"
	"github.com/lensfolio/lensfolio/internal/web"
	"github.com/lensfolio/lensfolio/internal/web/handler"
)

// ErrNilConfig is returned by New without a configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	closers    []io.Closer
}

// Start serves until SIGINT or SIGTERM and releases the stores afterwards.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start()

	d.Close()

	return err
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// Close releases the session storage and the database.
func (d *Daemon) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			log.Error().Err(err).Msg("failed to close resource")
		}
	}

	d.closers = nil
}

// New creates a new Daemon instance with the provided configuration.
// Integrations that are not configured are left out, their pages degrade.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	d := &Daemon{}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	d.closers = append(d.closers, closerFunc(func() error { return closeDB(gdb) }))

	storage, err := openSessionStorage(cfg, gdb)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.closers = append(d.closers, storage)

	store, err := OpenContentStore(cfg, gdb)
	if err != nil {
		d.Close()
		return nil, err
	}

	seed(ctx, cfg, store)

	issuer, err := auth.NewTokenIssuer(cfg.Webserver.Session.Secret, cfg.Webserver.Session.ExpiryTime)
	if err != nil {
		d.Close()
		return nil, err
	}

	deps := &handler.Deps{
		Config:  cfg,
		Content: content.NewRepository(store, cfg.Content.Timeout),
		Images: imageurl.Builder{
			ProjectID: cfg.Content.ProjectID,
			Dataset:   cfg.Content.Dataset,
			BaseURL:   cfg.Content.ImageBaseURL,
		},
		Gallery:    newGallery(cfg),
		Contact:    newContact(cfg),
		Sessions:   auth.NewSessions(issuer, storage),
		Identity:   newIdentity(ctx, cfg),
		Authorizer: newAuthorizer(cfg),
	}

	if d.webService, err = web.New(deps, nil); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func closeDB(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
