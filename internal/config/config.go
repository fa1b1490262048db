// Package config loads gasgraph settings from a YAML file and the environment.
//
// Precedence, lowest first: defaults, file, environment, command-line flags
// (applied by the caller before Validate).
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gasgraph/analysis"
	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/ingest"
	"github.com/katalvlaran/gasgraph/report"
)

// Environment variables read by Load.
const (
	EnvInput     = "GASGRAPH_INPUT"
	EnvSource    = "GASGRAPH_SOURCE"
	EnvMode      = "GASGRAPH_MODE"
	EnvLogLevel  = "GASGRAPH_LOG_LEVEL"
	EnvLogFormat = "GASGRAPH_LOG_FORMAT"
)

const maxValueExponent = 40

// LoggingConfig selects the zap level, encoding and caller annotation.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
	Caller bool   `yaml:"caller"`
}

// Config holds every setting of the gasgraph command. Keys missing from the
// file keep their Default values; environment variables and flags override it.
type Config struct {
	Input           string         `yaml:"input"`
	Source          string         `yaml:"source"`
	Directed        bool           `yaml:"directed"`
	Mode            string         `yaml:"mode"`
	Top             int            `yaml:"top"`
	Style           string         `yaml:"style"`
	Columns         ingest.Columns `yaml:"columns"`
	ValueExponent   int32          `yaml:"valueExponent"`
	StrictAddresses bool           `yaml:"strictAddresses"`
	Limit           int            `yaml:"limit"`
	CacheSize       int            `yaml:"cacheSize"`
	Logging         LoggingConfig  `yaml:"logging"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Mode:          centrality.ModeShortestPaths.String(),
		Top:           10,
		Style:         "unicode",
		Columns:       ingest.DefaultColumns(),
		ValueExponent: ingest.DefaultValueExponent,
		CacheSize:     analysis.DefaultCacheSize,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path (skipped when empty) over the defaults, then applies the
// process environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	cfg.applyEnv(lookup)

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvInput, &c.Input)
	set(EnvSource, &c.Source)
	set(EnvMode, &c.Mode)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
}

// Validate checks every field that has a restricted range.
func (c *Config) Validate() error {
	if _, err := centrality.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, "invalid mode")
	}
	if _, err := report.ParseStyle(c.Style); err != nil {
		return errors.Wrap(err, "invalid style")
	}
	if c.Top < 0 {
		return errors.Errorf("invalid top %d: must not be negative", c.Top)
	}
	if c.Limit < 0 {
		return errors.Errorf("invalid limit %d: must not be negative", c.Limit)
	}
	if c.CacheSize < 1 {
		return errors.Errorf("invalid cache size %d: must be positive", c.CacheSize)
	}
	if c.ValueExponent < -maxValueExponent || c.ValueExponent > maxValueExponent {
		return errors.Errorf("invalid value exponent %d: must be within ±%d", c.ValueExponent, maxValueExponent)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return errors.Errorf("invalid log format %q: want json or console", c.Logging.Format)
	}

	return nil
}

// AccumulationMode returns the parsed mode; call after Validate.
func (c *Config) AccumulationMode() centrality.Mode {
	m, _ := centrality.ParseMode(c.Mode)
	return m
}

// IngestOptions converts the ingestion fields to ingest options.
func (c *Config) IngestOptions() []ingest.Option {
	opts := []ingest.Option{
		ingest.WithColumns(c.Columns),
		ingest.WithValueExponent(c.ValueExponent),
		ingest.WithLimit(c.Limit),
	}
	if c.StrictAddresses {
		opts = append(opts, ingest.WithStrictAddresses())
	}

	return opts
}
