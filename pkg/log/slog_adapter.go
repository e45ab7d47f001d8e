package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see scan decisions in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("kind", event.Kind.String()),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Line > 0 {
		attrs = append(attrs, slog.Int("line", event.Line))
	}
	if event.Node != "" {
		attrs = append(attrs,
			slog.String("node", event.Node),
			slog.Uint64("address", event.Address),
		)
	}
	if event.Property != "" {
		attrs = append(attrs, slog.String("property", event.Property))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("detail", event.Message))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "scan", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
