// Package fiber provides access logging middleware writing zerolog events
// for every handled request.
package fiber

import (
	"bytes"
	"io"
	"os"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/marogo-civils/marogo-web/internal/logger"
)

// defaultCacheControlError is sent on chain errors when the config names
// no other value.
const defaultCacheControlError = "max-age=0"

// Config controls the access log middleware.
type Config struct {
	// Next skips this middleware when it returns true. Optional.
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// CheckAliveURI for disabling logging of health probe calls.
	CheckAliveURI string
}

// New creates fiber access logging middleware writing to the configured
// console and file outputs.
func New(cfg Config) fiber.Handler {
	if cfg.CacheControlError == "" {
		cfg.CacheControlError = defaultCacheControlError
	}

	accessLog := zerolog.New(zerolog.MultiLevelWriter(outputs(cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	var (
		once       sync.Once
		errHandler fiber.ErrorHandler
	)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		// the app's error handler is only reachable through a request
		once.Do(func() {
			errHandler = ctx.App().ErrorHandler
		})

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := errHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
				// ensure also 500 has a Cache-Control
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Locals("elapsed", elapsed)
		ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', -1, 64))

		// health probes are not worth a log line
		if cfg.Config.DisableCheckAlive && bytes.Equal(ctx.Request().RequestURI(), []byte(cfg.CheckAliveURI)) {
			return nil
		}

		logRequest(&accessLog, ctx, elapsed, chainErr)

		return nil
	}
}

// logRequest emits one access log event for a handled request.
func logRequest(accessLog *zerolog.Logger, ctx *fiber.Ctx, elapsed float64, chainErr error) {
	// fasthttp normalizes the URL path (e.g. /2//test/2 becomes /2/test/2),
	// the log keeps the unchanged path plus the raw query string
	reqPath := ctx.Path()
	if len(ctx.Queries()) > 0 {
		reqPath = reqPath + "?" + string(ctx.Request().URI().QueryString())
	}

	event := accessLog.Log().
		Str("IP", ctx.IP()).
		Int("status", ctx.Response().StatusCode()).
		Float64("X-Performance", elapsed).
		Str("URI", reqPath).
		Str("method", ctx.Method()).
		Bytes("host", ctx.Request().Host()).
		Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
		Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
		Str(fiber.HeaderOrigin, ctx.Get(fiber.HeaderOrigin)).
		Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

	if chainErr != nil {
		event.Err(chainErr)
	}

	event.Send()
}

// outputs builds the enabled access log writers.
func outputs(cfg logger.Log) []io.Writer {
	var writers []io.Writer

	if cfg.File.Enabled {
		if fw := rollingAccessFile(cfg.File); fw != nil {
			writers = append(writers, fw)
		}
	}

	// console output additionally requires the general console switch
	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	return writers
}

// rollingAccessFile creates the rotated access log file.
func rollingAccessFile(cfg logger.LogFile) io.Writer {
	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint: mnd
			log.Error().Err(err).Str("path", cfg.Path).Msg("can't create log directory")

			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.Path, cfg.AccessLog),
		MaxSize:    cfg.AccessMaxSize,
		MaxAge:     cfg.AccessMaxAge,
		MaxBackups: cfg.AccessMaxBackups,
	}
}
