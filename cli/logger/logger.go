package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string `name:"log-level"  doc:"log from debug, info, warn or error"`
	File   string `name:"log-file"   doc:"append logs to file"`
	Format string `name:"log-format" doc:"format logs as text or json"         default:"text"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger and a function closing its output.
// Unusable options fall back to defaults with a warning.
func New(options *Options) (*slog.Logger, func() error) {
	return newWithStdout(options, os.Stdout)
}

func nopClose() error { return nil }

func newWithStdout(options *Options, stdout io.Writer) (*slog.Logger, func() error) {
	level, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger, closer := newWithStdout(options, stdout)
		logger.Warn("could not parse logger level", "level", bad)
		return logger, closer
	}
	opts := slog.HandlerOptions{Level: level}

	output, closer := stdout, nopClose
	switch options.File {
	case "", "-":
	case os.DevNull:
		return slog.New(slog.DiscardHandler), nopClose
	default:
		file, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger, closer := newWithStdout(options, stdout)
			logger.Warn("could not open logger file", "err", err)
			return logger, closer
		}
		output, closer = file, file.Close
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts)), closer
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts)), closer
	default:
		_ = closer()
		bad := options.Format
		options.Format = "text"
		logger, closer := newWithStdout(options, stdout)
		logger.Warn("could not parse logger format", "format", bad)
		return logger, closer
	}
}
