// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog], used for chrono's own diagnostics.
//
// Instrumentation failures are never surfaced to the host program through
// control flow, so this package is the only place they become visible.
// The default logger writes text to standard error at [LevelError].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Error("failed to write trace", slog.Any("error", err))
//
// # Configuration
//
// Configure a logger at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON))
//
// The package-level functions use a shared default logger, which can be
// replaced wholesale with [Config]:
//
//	log.Config(log.WithOutput(f), log.WithLevel(log.LevelInfo))
package log
