package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hxfields/pkg/logger"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(nil, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, logger.Config{Level: slog.LevelInfo, Format: logger.FormatJSON}, cfg.Logger())
	assert.Empty(t, cfg.Sentry.DSN)
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
host: 0.0.0.0
port: 9000
log_level: warn
log_format: console
sentry:
  dsn: https://file@example.com/1
  environment: staging
`)

	t.Run("file over defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig([]string{"-config", path}, env(nil))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
		assert.Equal(t, slog.LevelWarn, cfg.Logger().Level)
		assert.Equal(t, logger.FormatConsole, cfg.Logger().Format)
		assert.Equal(t, "staging", cfg.Sentry.Environment)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig([]string{"-config", path}, env(map[string]string{
			"PORT":               "9100",
			"LOG_FORMAT":         "dev",
			"SENTRY_DSN":         "https://env@example.com/2",
			"SENTRY_ENVIRONMENT": "production",
		}))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:9100", cfg.Addr())
		assert.Equal(t, logger.FormatDev, cfg.Logger().Format)
		assert.Equal(t, "https://env@example.com/2", cfg.Sentry.DSN)
		assert.Equal(t, "production", cfg.Sentry.Environment)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(
			[]string{"-config", path, "-host", "localhost", "-port", "8181", "-log-level", "debug"},
			env(map[string]string{"HOST": "10.0.0.1", "PORT": "9100", "LOG_LEVEL": "error"}),
		)
		require.NoError(t, err)

		assert.Equal(t, "localhost:8181", cfg.Addr())
		assert.Equal(t, slog.LevelDebug, cfg.Logger().Level)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown flag", args: []string{"-verbose"}},
		{name: "port flag not a number", args: []string{"-port", "http"}},
		{name: "port env not a number", env: map[string]string{"PORT": "http"}, wantErr: ErrInvalidPort},
		{name: "port out of range", args: []string{"-port", "70000"}, wantErr: ErrInvalidPort},
		{name: "unknown log format", args: []string{"-log-format", "xml"}, wantErr: logger.ErrUnknownFormat},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "missing config file", args: []string{"-config", filepath.Join(os.TempDir(), "hxfields-missing.yaml")}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.args, env(tt.env))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("unknown yaml field", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig([]string{"-config", writeConfig(t, "listen: 1\n")}, env(nil))
		assert.Error(t, err)
	})

	t.Run("empty yaml file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig([]string{"-config", writeConfig(t, "")}, env(nil))
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	})
}

func TestRun_ExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, run([]string{"-log-format", "xml"}, env(nil)))
}
