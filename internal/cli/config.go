package cli

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/fs"
)

type Config struct {
	FileSystem fs.FileSystem
	Stdout     io.Writer
	Logger     *zap.Logger
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Stdout == nil {
		return errors.New("missing output writer")
	}

	return nil
}

type ShellConfig struct {
	Input   LineReader
	Version string
}

func (c ShellConfig) Validate() error {
	if c.Input == nil {
		return errors.New("missing line reader")
	}

	return nil
}
