package metadata

import (
	"context"
	"log/slog"
	"time"
)

/*
Recorder writes structured cleaning events to a slog.Logger.
It must not:
- change what gets cleaned
- affect control flow
Ordering guarantees:
- Events from one goroutine are written in the order they are recorded.
- No global ordering across goroutines is guaranteed.

slog handlers serialize writes, so a Recorder may be shared.
*/
type Recorder struct {
	logger *slog.Logger
}

// NewRecorder returns a Recorder writing to logger, or to slog.Default
// when logger is nil.
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger,
	}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	args := []any{
		slog.Time("observed_at", observedAt),
		slog.String("package", packageName),
		slog.String("action", action),
		slog.String("cause", cause.String()),
		slog.String("error", errorString),
	}
	level, msg := errorLevel(cause)
	r.logger.Log(context.Background(), level, msg, append(args, attrArgs(attrs)...)...)
}

// errorLevel maps a cause to its log level and message. Invalid URLs are
// expected in free text and are passed through unchanged.
func errorLevel(cause ErrorCause) (slog.Level, string) {
	switch cause {
	case CauseInvalidURL:
		return slog.LevelDebug, "passthrough"
	case CauseInvalidRule:
		return slog.LevelError, "invalid rule"
	case CauseConfigFailure:
		return slog.LevelError, "config failed"
	case CauseStorageFailure:
		return slog.LevelError, "write failed"
	default:
		return slog.LevelWarn, "error"
	}
}

func (r *Recorder) RecordClean(event CleanEvent) {
	r.logger.Debug("cleaned url",
		slog.String(string(AttrURL), event.OriginalURL()),
		slog.String("cleaned", event.CleanedURL()),
		slog.String(string(AttrHost), event.Host()),
		slog.String(string(AttrDomain), event.Domain()),
		slog.Any("removed", event.RemovedKeys()),
		slog.Bool("path_trimmed", event.PathTrimmed()),
	)
}

func (r *Recorder) RecordArtifact(path string, attrs []Attribute) {
	args := []any{slog.String(string(AttrWritePath), path)}
	r.logger.Info("wrote output", append(args, attrArgs(attrs)...)...)
}

/*
RecordFinalStats records the summary of a completed run.

Contract:
  - MUST be called at most once per run, after all text was cleaned.
  - Recorded stats MUST NOT influence control flow.
*/
func (r *Recorder) RecordFinalStats(
	urlsFound int,
	urlsCleaned int,
	paramsRemoved int,
	duration time.Duration,
) {
	stats := runStats{
		urlsFound:     urlsFound,
		urlsCleaned:   urlsCleaned,
		paramsRemoved: paramsRemoved,
		durationMs:    duration.Milliseconds(),
	}

	r.append(stats)
}

func (r *Recorder) append(stats runStats) {
	r.logger.Info("run finished",
		slog.Int("urls_found", stats.urlsFound),
		slog.Int("urls_cleaned", stats.urlsCleaned),
		slog.Int("params_removed", stats.paramsRemoved),
		slog.Int64("duration_ms", stats.durationMs),
	)
}

func attrArgs(attrs []Attribute) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, slog.String(string(attr.Key), attr.Value))
	}
	return args
}

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
	RecordClean(event CleanEvent)
	RecordArtifact(path string, attrs []Attribute)
}

type RunFinalizer interface {
	RecordFinalStats(
		urlsFound int,
		urlsCleaned int,
		paramsRemoved int,
		duration time.Duration,
	)
}

// NoopSink, struct that implements metadata.MetadataSink but does nothing
// Library callers (or tests) can decide whether to inject Recorder or NoopSink

type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordClean(event CleanEvent) {}

func (n *NoopSink) RecordArtifact(path string, attrs []Attribute) {}
