// Package logger configures the global zerolog logger of lensfolio.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	shipperMu sync.Mutex
	shipper   *DataDogWriter //nolint:gochecknoglobals
)

// LevelWriter splits log output by level. See WriteLevel about the separation.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel picks the target writer for the level l.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	if l == zerolog.Disabled {
		return 0, nil
	}

	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error and fatal panic go to error
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter // debug and info go to info
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables all, some or no logger at all.
// Be sure to enable at least one logger for output.
func Init(cfg Log) error { //nolint:funlen
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler

	ph := NewPrometheusHook(cfg.ServiceName)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if fw := newRollingInfoErrorFile(cfg); fw != nil {
			writers = append(writers, fw)
		}
	}

	if cfg.DataDog.Enabled {
		dw, errDD := NewDataDogWriter(cfg)
		if errDD != nil {
			return errDD
		}

		setShipper(dw)
		writers = append(writers, dw)
	}

	mw := zerolog.MultiLevelWriter(writers...)

	ctx := zerolog.New(mw).Hook(ph).With().Timestamp().Str("app", cfg.AppName)
	if cfg.LogEnv != "" {
		ctx = ctx.Str("env", cfg.LogEnv)
	}

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = ctx.Stack().Logger()
	case cfg.ReportCaller:
		log.Logger = ctx.Caller().Logger()
	default:
		log.Logger = ctx.Logger()
	}

	return nil
}

// Close flushes and stops log shipping. Safe to call without Init.
func Close() {
	setShipper(nil)
}

func setShipper(dw *DataDogWriter) {
	shipperMu.Lock()
	defer shipperMu.Unlock()

	if shipper != nil {
		_ = shipper.Close()
	}

	shipper = dw
}

// newRollingInfoErrorFile uses LevelWriter and lumberjack to create file based log.
func newRollingInfoErrorFile(cfg Log) io.Writer {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
		log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

		return nil
	}

	rolling := func(name string, maxSize, maxAge, maxBackups int) io.Writer {
		return &lumberjack.Logger{
			Filename:   path.Join(cfg.File.Path, name),
			MaxSize:    maxSize,
			MaxAge:     maxAge,
			MaxBackups: maxBackups,
		}
	}

	return &LevelWriter{
		ErrorWriter: rolling(cfg.File.ErrorLog, cfg.File.ErrorMaxSize, cfg.File.ErrorMaxAge, cfg.File.ErrorMaxBackups),
		InfoWriter:  rolling(cfg.File.InfoLog, cfg.File.InfoMaxSize, cfg.File.InfoMaxAge, cfg.File.InfoMaxBackups),
		TraceWriter: rolling(cfg.File.TraceLog, cfg.File.TraceMaxSize, cfg.File.TraceMaxAge, cfg.File.TraceMaxBackups),
		WarnWriter:  rolling(cfg.File.WarnLog, cfg.File.WarnMaxSize, cfg.File.WarnMaxAge, cfg.File.WarnMaxBackups),
	}
}

// NewConsoleWriter creates a level splitting console writer, human readable
// when Console.UseConsoleWriter is set and JSON lines otherwise.
func NewConsoleWriter(cfg Log) io.Writer {
	if !cfg.Console.UseConsoleWriter {
		return &LevelWriter{
			ErrorWriter: os.Stderr,
			InfoWriter:  os.Stdout,
			TraceWriter: os.Stderr,
			WarnWriter:  os.Stderr,
		}
	}

	pretty := func(out io.Writer) io.Writer {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	return &LevelWriter{
		ErrorWriter: pretty(os.Stderr),
		InfoWriter:  pretty(os.Stdout),
		TraceWriter: pretty(os.Stderr),
		WarnWriter:  pretty(os.Stderr),
	}
}
