package holocron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with store-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// LogAdd logs a batch add.
func (l *Logger) LogAdd(ctx context.Context, count, total int) {
	l.DebugContext(ctx, "add completed",
		"count", count,
		"records", total,
	)
}

// LogGet logs a batch lookup.
func (l *Logger) LogGet(ctx context.Context, requested, found int) {
	l.DebugContext(ctx, "get completed",
		"requested", requested,
		"found", found,
	)
}

// LogDelete logs a batch delete.
func (l *Logger) LogDelete(ctx context.Context, requested, removed int, strategy DeleteStrategy) {
	l.DebugContext(ctx, "delete completed",
		"requested", requested,
		"removed", removed,
		"strategy", strategy.String(),
	)
}

// LogQuery logs a query. Failures attributed to a record carry its id.
func (l *Logger) LogQuery(ctx context.Context, topK, scanned, results int, err error) {
	if err != nil {
		attrs := []any{
			"top_k", topK,
			"scanned", scanned,
			"kind", KindOf(err).String(),
			"error", err,
		}
		var sce *SimilarityCalculationError
		if errors.As(err, &sce) {
			attrs = append(attrs, "id", sce.ID)
		}
		l.ErrorContext(ctx, "query failed", attrs...)
		return
	}
	l.DebugContext(ctx, "query completed",
		"top_k", topK,
		"scanned", scanned,
		"results", results,
	)
}
