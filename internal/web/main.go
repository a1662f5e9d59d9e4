package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	fiberlogger "github.com/lensfolio/lensfolio/internal/logger/adapter/fiber"
	"github.com/lensfolio/lensfolio/internal/web/handler"
	"github.com/lensfolio/lensfolio/internal/web/handler/about"
	"github.com/lensfolio/lensfolio/internal/web/handler/admin"
	oidchandler "github.com/lensfolio/lensfolio/internal/web/handler/auth/oidc"
	"github.com/lensfolio/lensfolio/internal/web/handler/contact"
	"github.com/lensfolio/lensfolio/internal/web/handler/editor"
	"github.com/lensfolio/lensfolio/internal/web/handler/gallery"
	"github.com/lensfolio/lensfolio/internal/web/handler/home"
	"github.com/lensfolio/lensfolio/internal/web/handler/login"
	"github.com/lensfolio/lensfolio/internal/web/handler/logout"
	"github.com/lensfolio/lensfolio/internal/web/handler/setup"
	authmiddleware "github.com/lensfolio/lensfolio/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	deps         *handler.Deps
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the configured port.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	addr := ":" + strconv.Itoa(s.deps.Config.Webserver.Port)

	go func() {
		log.Info().Str("addr", addr).Msg("starting http server")

		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.deps.Config.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.deps.Config.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while the service accepts traffic and 503 while it
// drains.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// NewTemplateEngine returns the page template engine. Dev mode reads the
// templates from disk and reloads them on every render.
func NewTemplateEngine(devMode bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(Templates()), ".gohtml")

	if devMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	for name, fn := range TemplateFuncs() {
		engine.AddFunc(name, fn)
	}

	return engine
}

// New creates the web service with the given dependencies.
func New(deps *handler.Deps, views fiber.Views) (*Service, error) {
	if deps == nil || deps.Config == nil || deps.Content == nil {
		return nil, handler.ErrNilDeps
	}

	cfg := deps.Config

	if views == nil {
		views = NewTemplateEngine(cfg.DevMode)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192,
			AppName:               cfg.Title,
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			Views:                 views,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
				MaxAge:     3600,
			},
		),
	)

	service := &Service{App: app, deps: deps}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// gate everything below /admin
	app.Use(authmiddleware.New(cfg, deps.Sessions))

	handlers := []handler.Service{
		new(home.Service),
		new(gallery.Service),
		new(about.Service),
		new(contact.Service),
		new(login.Service),
		new(oidchandler.Service),
		new(logout.Service),
		new(admin.Service),
		new(editor.Service),
		new(setup.Service),
	}

	for _, h := range handlers {
		if err := h.Init(app, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}
