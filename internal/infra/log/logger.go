// Package logs builds the process-wide slog.Logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"coffeeshop/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

//nolint:gochecknoglobals
var levels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// New returns a logger writing to stdout at the configured level.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []slog.Attr
	if name := cfg.Env.ServiceName; name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if env := cfg.Env.Env; env != "" {
		attrs = append(attrs, slog.String("env", env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}

	return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
}
