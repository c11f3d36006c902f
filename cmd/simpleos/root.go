package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simpleos/simpleos-cli/internal/cli"
	"github.com/simpleos/simpleos-cli/internal/config"
	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/logging"
	"github.com/simpleos/simpleos-cli/internal/memoryfs"
	"github.com/simpleos/simpleos-cli/internal/versions"
)

type Options struct {
	ConfigPath     string
	Capacity       int
	MaxContentSize int
	ResolvePaths   bool
	Cascade        bool
	ScriptPath     string
	Debug          bool
}

func NewRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "simpleos",
		Short:         "An interactive shell over an in-memory file table",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       versions.String(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, *opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "load settings and seed entries from a YAML file")
	flags.IntVar(&opts.Capacity, "capacity", memoryfs.DefaultCapacity, "maximum number of table rows, deleted ones included (0 for unbounded)")
	flags.IntVar(&opts.MaxContentSize, "max-content", memoryfs.DefaultMaxContentSize, "truncate written content to this many bytes (0 for unbounded)")
	flags.BoolVar(&opts.ResolvePaths, "resolve-paths", false, "resolve every path against the current directory")
	flags.BoolVar(&opts.Cascade, "cascade", false, "apply delete and rename to the entries below a directory")
	flags.StringVar(&opts.ScriptPath, "script", "", "read commands from a file instead of stdin")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug output")
	_ = flags.MarkHidden("debug")

	return cmd
}

func loadConfig(cmd *cobra.Command, opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = opts.Capacity
	}
	if flags.Changed("max-content") {
		cfg.MaxContentSize = opts.MaxContentSize
	}
	if flags.Changed("resolve-paths") {
		cfg.ResolvePaths = opts.ResolvePaths
	}
	if flags.Changed("cascade") {
		cfg.Cascade = opts.Cascade
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid settings")
	}

	return cfg, nil
}

func runShell(cmd *cobra.Command, opts Options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	cfg.Log.Output = cmd.ErrOrStderr()
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	mfs, err := memoryfs.NewFS(cfg.MemoryFS(logger))
	if err != nil {
		return errors.Wrap(err, "unable to initialize the file table")
	}

	service, err := cli.NewService(cli.Config{
		FileSystem: mfs,
		Stdout:     cmd.OutOrStdout(),
		Logger:     logger,
	})
	if err != nil {
		return errors.Wrap(err, "unable to initialize the shell")
	}

	input, closeInput, err := lineReader(cmd, opts.ScriptPath)
	if err != nil {
		return err
	}
	defer closeInput()

	return service.RunShell(cli.ShellConfig{Input: input, Version: versions.Short()})
}

// lineReader edits lines interactively on a terminal and scans everything else.
func lineReader(cmd *cobra.Command, scriptPath string) (cli.LineReader, func(), error) {
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "unable to open script %q", scriptPath)
		}
		return cli.NewScannerReader(f, cmd.OutOrStdout()), func() { _ = f.Close() }, nil
	}

	in := cmd.InOrStdin()
	stdin, isFile := in.(*os.File)
	stdout, outIsFile := cmd.OutOrStdout().(*os.File)
	if isFile && outIsFile && term.IsTerminal(int(stdin.Fd())) {
		return cli.PromptReader{Stdin: stdin, Stdout: stdout}, func() {}, nil
	}

	return cli.NewScannerReader(in, cmd.OutOrStdout()), func() {}, nil
}
