package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/ingest"
	"github.com/katalvlaran/gasgraph/internal/config"
)

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gasgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg, err := config.LoadWithEnv("", noEnv)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "shortest", cfg.Mode)
	require.Equal(t, 10, cfg.Top)
	require.Equal(t, ingest.DefaultColumns(), cfg.Columns)
	require.Equal(t, ingest.DefaultValueExponent, cfg.ValueExponent)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, centrality.ModeShortestPaths, cfg.AccumulationMode())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
input: tx.csv
source: "0xabc"
directed: true
mode: every
top: 3
columns:
  gas: gas_used
valueExponent: 0
logging:
  level: debug
  format: json
`)
	cfg, err := config.LoadWithEnv(path, noEnv)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "tx.csv", cfg.Input)
	require.Equal(t, "0xabc", cfg.Source)
	require.True(t, cfg.Directed)
	require.Equal(t, centrality.ModeEveryRelaxation, cfg.AccumulationMode())
	require.Equal(t, 3, cfg.Top)
	require.Equal(t, "gas_used", cfg.Columns.Gas)
	require.Equal(t, "from_address", cfg.Columns.From, "unset columns keep defaults")
	require.Zero(t, cfg.ValueExponent)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Len(t, cfg.IngestOptions(), 3)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadWithEnv(writeFile(t, "top: [1, 2"), noEnv)
	require.Error(t, err)

	_, err = config.LoadWithEnv(writeFile(t, "unknownKey: 1\n"), noEnv)
	require.Error(t, err, "unknown keys are rejected")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "input: file.csv\nsource: fromfile\n")
	env := map[string]string{
		config.EnvInput:     "env.csv",
		config.EnvMode:      "every",
		config.EnvLogLevel:  "warn",
		config.EnvLogFormat: "json",
		config.EnvSource:    "",
	}
	cfg, err := config.LoadWithEnv(path, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)

	require.Equal(t, "env.csv", cfg.Input)
	require.Equal(t, "fromfile", cfg.Source, "empty variables are ignored")
	require.Equal(t, "every", cfg.Mode)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"mode":       func(c *config.Config) { c.Mode = "fastest" },
		"style":      func(c *config.Config) { c.Style = "fancy" },
		"top":        func(c *config.Config) { c.Top = -1 },
		"limit":      func(c *config.Config) { c.Limit = -1 },
		"cache size": func(c *config.Config) { c.CacheSize = 0 },
		"exponent":   func(c *config.Config) { c.ValueExponent = 99 },
		"log level":  func(c *config.Config) { c.Logging.Level = "loud" },
		"log format": func(c *config.Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
