package analytics

import (
	"context"
	"log/slog"
)

// Tracker fires page and form events at an external analytics collector.
// Calls are fire-and-forget; a failed event never affects a request.
type Tracker interface {
	Track(ctx context.Context, event string, props map[string]string)
}

type NoopTracker struct{}

func NewNoop() *NoopTracker {
	return &NoopTracker{}
}

func (n *NoopTracker) Track(ctx context.Context, event string, props map[string]string) {}

// LogTracker stands in for the real collector during development; it tags
// every event with the configured measurement id.
type LogTracker struct {
	measurementID string
	log           *slog.Logger
}

func NewLogTracker(measurementID string, log *slog.Logger) *LogTracker {
	return &LogTracker{measurementID: measurementID, log: log}
}

func (t *LogTracker) Track(ctx context.Context, event string, props map[string]string) {
	attrs := []any{
		slog.String("measurement_id", t.measurementID),
		slog.String("event", event),
	}
	for k, v := range props {
		attrs = append(attrs, slog.String(k, v))
	}
	t.log.Info("analytics event", attrs...)
}
