package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
	FormatDev     Format = "dev"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("logger: unknown format")

// Config configures New.
type Config struct {
	Level     slog.Level
	Format    Format
	AddSource bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

// ParseFormat accepts "json", "console" and "dev", case-insensitively.
// An empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatConsole, FormatDev:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseLevel accepts slog level names ("debug", "INFO", "warn+2").
// An empty string selects info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return lvl, nil
}

// formatters render error values and header collections as attribute groups.
var formatters = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(f httpfields.Fields) slog.Value {
		attrs := make([]slog.Attr, 0, f.Len())
		for fld := range f.All() {
			attrs = append(attrs, slog.String(fld.Name.String(), fld.Value))
		}
		return slog.GroupValue(attrs...)
	}),
)

// New creates a logger with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(cfg), extractors...))
}

func newHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var h slog.Handler
	switch cfg.Format {
	case FormatConsole:
		h = console.NewHandler(out, &console.HandlerOptions{
			AddSource:  opts.AddSource,
			Level:      opts.Level,
			TimeFormat: time.RFC3339,
		})
	case FormatDev:
		h = devslog.NewHandler(out, &devslog.Options{
			HandlerOptions: opts,
			SortKeys:       true,
			TimeFormat:     time.RFC3339,
		})
	default:
		h = slog.NewJSONHandler(out, opts)
	}
	return formatters(h)
}
