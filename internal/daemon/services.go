package daemon

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lensfolio/lensfolio/internal/auth"
	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/contact"
	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/content/gormstore"
	"github.com/lensfolio/lensfolio/internal/content/sanity"
	"github.com/lensfolio/lensfolio/internal/db"
	"github.com/lensfolio/lensfolio/internal/db/dsn"
	"github.com/lensfolio/lensfolio/internal/db/sessionstore"
	"github.com/lensfolio/lensfolio/internal/gallery"
	"github.com/lensfolio/lensfolio/internal/web/handler"
)

// sessionTable is used by the gofiber storage drivers. The gorm sessions
// table has a different layout.
const sessionTable = "fiber_sessions"

// openSessionStorage returns the session storage of the database engine.
func openSessionStorage(cfg *config.Config, gdb *gorm.DB) (fiber.Storage, error) {
	switch cfg.DB.GormEngine {
	case db.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         sessionTable,
		}), nil
	case db.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         sessionTable,
		}), nil
	default:
		return sessionstore.New(gdb), nil
	}
}

// OpenContentStore returns the configured document store.
func OpenContentStore(cfg *config.Config, gdb *gorm.DB) (content.Store, error) {
	if cfg.Content.Backend != config.BackendSanity {
		return gormstore.New(gdb), nil
	}

	client, err := sanity.New(sanity.Config{
		ProjectID:  cfg.Content.ProjectID,
		Dataset:    cfg.Content.Dataset,
		Token:      cfg.Content.Token,
		APIVersion: cfg.Content.APIVersion,
		UseCDN:     cfg.Content.UseCDN,
		HTTPClient: &http.Client{Timeout: cfg.Content.Timeout},
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

func newGallery(cfg *config.Config) gallery.Fetcher {
	client, err := gallery.NewClient(gallery.Config{
		AccessKey: cfg.Gallery.AccessKey,
		Username:  cfg.Gallery.Username,
		BaseURL:   cfg.Gallery.BaseURL,
		PerPage:   cfg.Gallery.PerPage,
		Timeout:   cfg.Gallery.Timeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("gallery disabled")
		return nil
	}

	return gallery.NewCache(client, cfg.Gallery.CacheTTL)
}

func newContact(cfg *config.Config) handler.ContactSubmitter {
	var (
		sender contact.Sender
		err    error
	)

	switch cfg.Mail.Transport {
	case "log":
		sender = contact.LogSender{}
	default:
		sender, err = contact.NewResendSender(cfg.Mail.APIKey, &http.Client{Timeout: cfg.Mail.Timeout})
		if err != nil {
			log.Warn().Err(err).Msg("contact form disabled")
			return nil
		}
	}

	to := cfg.Mail.To
	if len(to) == 0 && cfg.Auth.AdminEmail != "" {
		to = []string{cfg.Auth.AdminEmail}
	}

	from := cfg.Mail.From
	if from == "" && len(to) > 0 {
		from = to[0]
	}

	renderer, err := contact.NewRenderer(contact.Signature{
		Name:    cfg.Title,
		Email:   from,
		Website: cfg.Webserver.URL,
	})
	if err != nil {
		log.Error().Err(err).Msg("contact form disabled: email templates")
		return nil
	}

	svc, err := contact.NewService(contact.Config{
		From:             from,
		To:               to,
		Cc:               cfg.Mail.Cc,
		SendConfirmation: cfg.Mail.SendConfirmation,
		Timeout:          cfg.Mail.Timeout,
	}, sender, renderer)
	if err != nil {
		log.Warn().Err(err).Msg("contact form disabled")
		return nil
	}

	return svc
}

func newAuthorizer(cfg *config.Config) auth.Authorizer {
	allow := auth.NewStaticAllowList(append([]string{cfg.Auth.AdminEmail}, cfg.Auth.AllowList...)...)
	if allow.Len() == 0 && !cfg.Auth.LDAP.Enabled {
		log.Warn().Msg("no addresses are allowed to sign in")
	}

	authorizers := auth.AnyOf{allow}

	if cfg.Auth.LDAP.Enabled {
		l := cfg.Auth.LDAP

		directory, err := auth.NewDirectoryMembership(auth.LDAPConfig{
			Enabled:      l.Enabled,
			Host:         l.Host,
			Port:         l.Port,
			UseSSL:       l.UseSSL,
			UseTLS:       l.UseTLS,
			SkipVerify:   l.SkipVerify,
			BindDN:       l.BindDN,
			BindPassword: l.BindPassword,
			BaseDN:       l.BaseDN,
			MailAttr:     l.MailAttr,
			GroupDN:      l.GroupDN,
			MemberAttr:   l.MemberAttr,
			Timeout:      l.Timeout,
		})
		if err != nil {
			log.Error().Err(err).Msg("directory membership disabled")
		} else {
			authorizers = append(authorizers, directory)
		}
	}

	return authorizers
}

func newIdentity(ctx context.Context, cfg *config.Config) handler.IdentityProvider {
	o := cfg.Auth.OIDC
	if o.ClientID == "" || o.ClientSecret == "" {
		log.Warn().Msg("sign-in disabled: no OAuth client configured")
		return nil
	}

	provider, err := auth.NewOIDCProvider(ctx, auth.OIDCConfig{
		ProviderURL:  o.ProviderURL,
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		RedirectURL:  o.RedirectURL,
		Scopes:       o.Scopes,
	})
	if err != nil {
		log.Error().Err(err).Msg("sign-in disabled")
		return nil
	}

	return provider
}
