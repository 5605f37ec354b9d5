// Package log builds the configured slog.Logger for the CLI.
//
// Without a log file, records below Error go to stdout and Error and above
// to stderr, so generated-file listings can be piped while failures stay
// visible. With a log file, the console copy moves entirely to stderr.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to multiple handlers.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

// levelFilter passes records to the underlying handler only when the
// predicate accepts their level.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
// The returned closers belong to the caller.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers []slog.Handler
	var closeFiles []io.Closer

	if logFile == "" {
		stdoutHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, levelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: stdoutHandler})

		stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
		handlers = append(handlers, levelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: stderrHandler})
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(multiHandler{hs: handlers}), closeFiles, nil
}
