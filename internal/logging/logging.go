// Package logging holds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	EnvLevel = "DIMRED_LOG_LEVEL"
	EnvJSON  = "DIMRED_LOG_JSON"
)

type Options struct {
	Level string
	JSON  bool

	// Output defaults to stderr; stdout carries CLI results and event lines.
	Output io.Writer
}

var def atomic.Pointer[slog.Logger]

func init() {
	def.Store(New(Options{}))
}

// New builds a logger without installing it.
func New(opts Options) *slog.Logger {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	cfg := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, cfg)
	} else {
		h = slog.NewTextHandler(w, cfg)
	}
	return slog.New(h).With("service", "dimred")
}

func Configure(opts Options) {
	def.Store(New(opts))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func L() *slog.Logger {
	return def.Load()
}

// Component tags records with the emitting subsystem.
func Component(name string) *slog.Logger {
	return L().With("component", name)
}

// InitFromEnv applies DIMRED_LOG_LEVEL / DIMRED_LOG_JSON. Values from the
// service config, when set, win over the environment.
func InitFromEnv(fallback Options) {
	opts := fallback
	if opts.Level == "" {
		opts.Level = os.Getenv(EnvLevel)
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvJSON))); err == nil && !opts.JSON {
		opts.JSON = b
	}
	Configure(opts)
}
