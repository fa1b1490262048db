// Package logging builds the zap logger used by the gasgraph command.
package logging

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gasgraph/internal/config"
)

// New returns a logger writing to stderr with the configured level and encoding.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	core, err := NewCore(cfg, zapcore.Lock(os.Stderr))
	if err != nil {
		return nil, err
	}
	var opts []zap.Option
	if cfg.Caller {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(core, opts...), nil
}

// NewCore returns a core writing to ws.
func NewCore(cfg config.LoggingConfig, ws zapcore.WriteSyncer) (zapcore.Core, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		enc = zapcore.NewJSONEncoder(ec)
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	}

	return zapcore.NewCore(enc, ws, level), nil
}
