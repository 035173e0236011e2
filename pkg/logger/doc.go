// Package logger builds slog loggers with context extraction and optional
// Sentry fan-out.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{
//		Level:  slog.LevelDebug,
//		Format: logger.FormatConsole,
//	}, logger.FromContext(requestIDKey{}, "request_id"))
//
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//
// Three formats are available: FormatJSON (the default), FormatConsole for
// a compact human-readable line, and FormatDev for a colored multi-line view
// of every attribute. Use ParseFormat and ParseLevel to read them from flags
// or the environment.
//
// Every handler renders error attributes named "error" as a group with the
// message and type, and httpfields.Fields values as a group of header lines.
//
// # Context Extractors
//
// A ContextExtractor runs on every log call and returns the attribute to add,
// or false to skip it. LogHandlerDecorator applies extractors to any handler:
//
//	h := logger.NewLogHandlerDecorator(slog.NewTextHandler(os.Stderr, nil), extractors...)
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(cfg, logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//	defer logger.Flush(2 * time.Second)
//
// Errors create Sentry issues, and warnings are stored as Sentry logs. With an
// empty DSN, or if Sentry fails to initialize, only the local handler is used.
package logger
