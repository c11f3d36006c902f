// Package logging builds the zap logger shared by the engine and the shell.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simpleos/simpleos-cli/internal/errors"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	Level  string `yaml:"level"`  // debug, info, warn, error; empty disables logging
	Format string `yaml:"format"` // console, json
	// Output defaults to stderr so log lines never mix with the shell's stdout.
	Output io.Writer `yaml:"-"`
}

func (c Config) Validate() error {
	if c.Level != "" {
		if _, err := zapcore.ParseLevel(c.Level); err != nil {
			return errors.Wrapf(err, "invalid log level %q", c.Level)
		}
	}

	switch c.Format {
	case "", FormatConsole, FormatJSON:
		return nil
	}

	return errors.Errorf("invalid log format %q (must be %s or %s)", c.Format, FormatConsole, FormatJSON)
}

// New returns a logger for cfg. An empty level yields a no-op logger.
func New(cfg Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	if cfg.Level == "" {
		return zap.NewNop(), nil
	}

	level, _ := zapcore.ParseLevel(cfg.Level)

	var encoder zapcore.Encoder
	if cfg.Format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), level)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
