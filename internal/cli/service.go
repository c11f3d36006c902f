package cli

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/messages"
)

// Service holds the shell: it reads commands, runs them against the file system and prints
// the outcome.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return Service{cfg}, nil
}

// RunShell prints the banner and processes commands until exit or the end of the input.
// Failed commands are reported and the loop continues; only input errors are returned.
func (s Service) RunShell(cfg ShellConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	s.println(messages.Banner(cfg.Version))

	for {
		wd, err := s.FileSystem.Getwd()
		if err != nil {
			return errors.Wrap(err, "unable to determine the current directory")
		}

		line, err := cfg.Input.ReadLine(messages.Prompt(wd))
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "unable to read command")
		}

		exit, err := s.Execute(line, cfg.Input)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if exit {
			break
		}
	}

	s.println(messages.Farewell)
	return nil
}

// Execute runs a single command line. It reports whether the shell should stop. in is used by
// commands that prompt for more input.
func (s Service) Execute(line string, in LineReader) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := fields[0], fields[1:]
	if len(args) > 2 {
		args = args[:2]
	}

	cmd, ok := lookupCommand(name)
	if !ok {
		s.println(messages.UnknownCommand(name))
		return false, nil
	}

	if len(args) < cmd.args {
		if cmd.prompt != "" {
			if _, err := in.ReadLine(cmd.prompt); err != nil {
				return false, err
			}
		}

		s.println(messages.Usage(cmd.usage))
		return false, nil
	}

	if cmd.exit {
		return true, nil
	}

	if err := cmd.run(s, args, in); err != nil {
		if errors.Is(err, io.EOF) {
			return false, err
		}

		s.Logger.Debug("command failed", zap.String("command", name), zap.Strings("args", args), zap.Error(err))
		s.println(s.describe(err, name, args))
	}

	return false, nil
}

func (s Service) describe(err error, name string, args []string) string {
	if cmd, _ := lookupCommand(name); cmd.describe != nil {
		if msg, ok := cmd.describe(err, args); ok {
			return msg
		}
	}

	return messages.FormatError(err)
}

func (s Service) println(msg string) {
	fmt.Fprintln(s.Stdout, msg)
}
