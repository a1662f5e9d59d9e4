// Package fiber provides the zerolog access log middleware of the web service.
package fiber

import (
	"io"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lensfolio/lensfolio/internal/logger"
)

// HeaderRequestID carries the request id assigned by the middleware.
const HeaderRequestID = "X-Request-Id"

// LocalRequestID is the fiber.Locals key of the request id.
const LocalRequestID = "requestID"

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// CheckAliveURI for disabling logging of check alive http calls.
	CheckAliveURI string

	// Output overrides the writers derived from Config. Used by tests.
	Output io.Writer
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{
	Next:              nil,
	CacheControlError: "max-age=0",
	CheckAliveURI:     "/checkalive",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	if cfg.CheckAliveURI == "" {
		cfg.CheckAliveURI = ConfigDefault.CheckAliveURI
	}

	return cfg
}

func writers(cfg Config) []io.Writer {
	if cfg.Output != nil {
		return []io.Writer{cfg.Output}
	}

	var out []io.Writer

	if cfg.Config.File.Enabled {
		if w := newRollingAccessFile(&cfg.Config); w != nil {
			out = append(out, w)
		}
	}

	// console output needs both the general console switch and the access log switch
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		if cfg.Config.Console.UseConsoleWriter {
			out = append(out, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			out = append(out, os.Stdout)
		}
	}

	return out
}

// New creates a new fiber access logging middleware using zerolog.
// Every request gets an id which is echoed in the X-Request-Id header.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	accessLog := zerolog.New(zerolog.MultiLevelWriter(writers(cfg)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Locals(LocalRequestID, requestID)
		ctx.Set(HeaderRequestID, requestID)

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := ctx.App().ErrorHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && ctx.Path() == cfg.CheckAliveURI {
			return nil
		}

		// fasthttp normalizes the path (//a -> /a), log what the client sent
		uri := ctx.Path()
		if q := ctx.Request().URI().QueryString(); len(q) > 0 {
			uri += "?" + string(q)
		}

		entry := accessLog.Log().
			Str("requestID", requestID).
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64("X-Performance", elapsed).
			Str("URI", uri).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if chainErr != nil {
			entry.Err(chainErr)
		}

		entry.Send()

		return nil
	}
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint:mnd
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.File.Path, cfg.File.AccessLog),
		MaxSize:    cfg.File.AccessMaxSize,
		MaxAge:     cfg.File.AccessMaxAge,
		MaxBackups: cfg.File.AccessMaxBackups,
	}
}
