package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hxfields/pkg/logger"
)

const (
	defaultHost = "127.0.0.1"
	defaultPort = 8080
)

// ErrInvalidPort is returned for ports outside 0-65535.
var ErrInvalidPort = errors.New("invalid port")

// Config is the server configuration.
type Config struct {
	Host      string              `yaml:"host"`
	Port      int                 `yaml:"port"`
	LogLevel  string              `yaml:"log_level"`
	LogFormat string              `yaml:"log_format"`
	Sentry    logger.SentryConfig `yaml:"sentry"`

	level  slog.Level
	format logger.Format
}

// Addr returns host:port for the listener.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Logger returns the logger settings. Output goes to stdout.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.level, Format: c.format}
}

// LoadConfig resolves the configuration from flags, environment and an
// optional YAML file. Precedence is flag, then env, then file, then defaults.
func LoadConfig(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("hxfields", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		host       = fs.String("host", defaultHost, "address to listen on")
		port       = fs.Int("port", defaultPort, "port to listen on")
		logLevel   = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat  = fs.String("log-format", "json", "log format: json, console, dev")
		configPath = fs.String("config", "", "optional YAML config file")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, errtrace.Wrap(err)
	}

	cfg := Config{
		Host:      defaultHost,
		Port:      defaultPort,
		LogLevel:  "info",
		LogFormat: string(logger.FormatJSON),
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return Config{}, errtrace.Wrap(err)
		}
	}

	if err := cfg.loadEnv(getenv); err != nil {
		return Config{}, errtrace.Wrap(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	if err := cfg.validate(); err != nil {
		return Config{}, errtrace.Wrap(err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errtrace.Wrap(fmt.Errorf("parse %s: %w", path, err))
	}
	return nil
}

func (c *Config) loadEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := getenv("HOST"); v != "" {
		c.Host = v
	}
	if v := getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("%w: PORT=%q", ErrInvalidPort, v))
		}
		c.Port = p
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("SENTRY_DSN"); v != "" {
		c.Sentry.DSN = v
	}
	if v := getenv("SENTRY_ENVIRONMENT"); v != "" {
		c.Sentry.Environment = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errtrace.Wrap(fmt.Errorf("%w: %d", ErrInvalidPort, c.Port))
	}

	lvl, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return errtrace.Wrap(err)
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return errtrace.Wrap(err)
	}

	c.level = lvl
	c.format = format
	return nil
}
