// Package logging builds the structured loggers injected into the analysis
// helpers and correlates the records of one operation through a run id.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/magpierre/dsb-eda/config"
)

// contextKey is a type for context keys
type contextKey string

// RunIDContextKey is the key for storing the run id in context
const RunIDContextKey contextKey = "run_id"

// New creates a logger writing to the output named in cfg.
func New(cfg config.LoggingConfig) (*slog.Logger, error) {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}
	return NewWithWriter(cfg, output)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return slog.New(&runHandler{Handler: handler}), nil
}

// runHandler wraps a slog.Handler to inject run_id from context
type runHandler struct {
	slog.Handler
}

// Handle adds run_id to the record if present in context
func (h *runHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RunID(ctx); id != "" {
		r.AddAttrs(slog.String(string(RunIDContextKey), id))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs returns a new Handler with additional attributes
func (h *runHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &runHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup returns a new Handler with the given group name
func (h *runHandler) WithGroup(name string) slog.Handler {
	return &runHandler{Handler: h.Handler.WithGroup(name)}
}

// ParseLevel converts a string log level to slog.Level. Unknown levels
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRunID adds a run id to the context
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDContextKey, id)
}

// RunID retrieves the run id from context
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RunIDContextKey).(string); ok {
		return id
	}
	return ""
}

// EnsureRunID returns ctx unchanged when it already carries a run id and
// otherwise derives a context carrying a fresh one.
func EnsureRunID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if RunID(ctx) != "" {
		return ctx
	}
	return WithRunID(ctx, uuid.NewString())
}
