// Package logger configures the global zerolog logger: level parsing,
// console and rotating file outputs split by level, and a prometheus hook
// counting emitted statements.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// splitWriter routes each event to one writer per level group: trace, info
// (debug and info), warn, and error and above.
type splitWriter struct {
	trace io.Writer
	info  io.Writer
	warn  io.Writer
	err   io.Writer
}

// Write satisfies io.Writer for level-less writes.
func (w *splitWriter) Write(p []byte) (int, error) {
	return w.info.Write(p) //nolint:wrapcheck
}

// WriteLevel picks the output for one event.
func (w *splitWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l == zerolog.Disabled {
		return 0, nil
	}

	var out io.Writer

	switch {
	case l == zerolog.TraceLevel:
		out = w.trace
	case l == zerolog.WarnLevel:
		out = w.warn
	case l > zerolog.WarnLevel: // error, fatal and panic share one output
		out = w.err
	default: // debug and info
		out = w.info
	}

	return out.Write(p) //nolint:wrapcheck
}

// Init configures the global zerolog logger from cfg. At least one output
// should be enabled, otherwise nothing is logged at all.
func Init(cfg Log) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.LogLevel)
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	// full error stacks are only worth their cost when tracing
	stack := level == zerolog.TraceLevel
	if stack {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
	}

	zerolog.SetGlobalLevel(level)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, consoleOutput(cfg.Console.UseConsoleWriter))
	}

	if cfg.File.Enabled {
		if fw := fileOutput(cfg.File); fw != nil {
			writers = append(writers, fw)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().Timestamp()

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// consoleOutput writes info output to stdout and everything else to stderr,
// optionally through zerolog's human readable console writer.
func consoleOutput(pretty bool) io.Writer {
	if !pretty {
		return &splitWriter{
			trace: os.Stderr,
			info:  os.Stdout,
			warn:  os.Stderr,
			err:   os.Stderr,
		}
	}

	console := func(out *os.File) io.Writer {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return &splitWriter{
		trace: console(os.Stderr),
		info:  console(os.Stdout),
		warn:  console(os.Stderr),
		err:   console(os.Stderr),
	}
}

// fileOutput writes each level group to its own rotated file. A log
// directory that cannot be created disables file logging rather than
// taking the service down.
func fileOutput(cfg LogFile) io.Writer {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint: mnd
		log.Error().Err(err).Str("path", cfg.Path).Msg("can't create log directory")

		return nil
	}

	rolling := func(name string, size, backups, age int) io.Writer {
		return &lumberjack.Logger{
			Filename:   path.Join(cfg.Path, name),
			MaxSize:    size,
			MaxBackups: backups,
			MaxAge:     age,
		}
	}

	return &splitWriter{
		trace: rolling(cfg.TraceLog, cfg.TraceMaxSize, cfg.TraceMaxBackups, cfg.TraceMaxAge),
		info:  rolling(cfg.InfoLog, cfg.InfoMaxSize, cfg.InfoMaxBackups, cfg.InfoMaxAge),
		warn:  rolling(cfg.WarnLog, cfg.WarnMaxSize, cfg.WarnMaxBackups, cfg.WarnMaxAge),
		err:   rolling(cfg.ErrorLog, cfg.ErrorMaxSize, cfg.ErrorMaxBackups, cfg.ErrorMaxAge),
	}
}
