package cli

import (
	"strconv"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
	"github.com/simpleos/simpleos-cli/internal/messages"
)

type command struct {
	names []string
	usage string
	args  int
	exit  bool
	// prompt is read even when the arguments are missing, so scripts stay line-aligned.
	prompt string
	run    func(s Service, args []string, in LineReader) error
	// describe may replace the generic error line for this command.
	describe func(err error, args []string) (string, bool)
}

var commands = []command{
	{names: []string{"list", "ls"}, usage: "list", run: runList},
	{names: []string{"create"}, usage: "create [filename]", args: 1, run: runCreate},
	{names: []string{"write"}, usage: "write [filename]", args: 1, prompt: messages.ContentPrompt, run: runWrite},
	{names: []string{"read", "cat"}, usage: "read [filename]", args: 1, run: runRead},
	{names: []string{"move", "mv"}, usage: "move [src] [dest]", args: 2, run: runMove},
	{names: []string{"rename"}, usage: "rename [old] [new]", args: 2, run: runRename},
	{names: []string{"delete", "rm"}, usage: "delete [filename]", args: 1, run: runDelete},
	{names: []string{"copy", "cp"}, usage: "copy [src] [dest]", args: 2, run: runCopy},
	{names: []string{"mkdir"}, usage: "mkdir [dirname]", args: 1, run: runMkdir},
	{names: []string{"rmdir"}, usage: "rmdir [dirname]", args: 1, run: runRmdir},
	{names: []string{"cd"}, usage: "cd [dirname]", args: 1, run: runChdir},
	{names: []string{"chmod"}, usage: "chmod [file] [perm]", args: 2, run: runChmod, describe: describeChmod},
	{names: []string{"stat"}, usage: "stat", run: runStat},
	{names: []string{"help"}, usage: "help", run: runHelp},
	{names: []string{"exit", "quit"}, usage: "exit", exit: true},
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		for _, n := range cmd.names {
			if n == name {
				return cmd, true
			}
		}
	}
	return command{}, false
}

func runList(s Service, _ []string, _ LineReader) error {
	wd, err := s.FileSystem.Getwd()
	if err != nil {
		return err
	}

	entries, err := s.FileSystem.List()
	if err != nil {
		return err
	}

	s.println(messages.FormatListing(wd, entries))
	return nil
}

func runCreate(s Service, args []string, _ LineReader) error {
	if err := s.FileSystem.Create(args[0]); err != nil {
		return err
	}

	s.println(messages.Created(args[0]))
	return nil
}

func runWrite(s Service, args []string, in LineReader) error {
	content, err := in.ReadLine(messages.ContentPrompt)
	if err != nil {
		return err
	}

	if err := s.FileSystem.Write(args[0], content); err != nil {
		return err
	}

	s.println(messages.Written(args[0]))
	return nil
}

func runRead(s Service, args []string, _ LineReader) error {
	content, err := s.FileSystem.Read(args[0])
	if err != nil {
		return err
	}

	s.println(messages.Content(args[0], content))
	return nil
}

func runMove(s Service, args []string, _ LineReader) error {
	newPath, err := s.FileSystem.Move(args[0], args[1])
	if err != nil {
		return err
	}

	s.println(messages.Moved(args[0], newPath))
	return nil
}

func runRename(s Service, args []string, _ LineReader) error {
	if err := s.FileSystem.Rename(args[0], args[1]); err != nil {
		return err
	}

	s.println(messages.Renamed(args[0], args[1]))
	return nil
}

func runDelete(s Service, args []string, _ LineReader) error {
	if err := s.FileSystem.Delete(args[0]); err != nil {
		return err
	}

	s.println(messages.Deleted(args[0]))
	return nil
}

func runCopy(s Service, args []string, _ LineReader) error {
	newPath, err := s.FileSystem.Copy(args[0], args[1])
	if err != nil {
		return err
	}

	s.println(messages.Copied(args[0], newPath))
	return nil
}

func runMkdir(s Service, args []string, _ LineReader) error {
	path, err := s.FileSystem.Mkdir(args[0])
	if err != nil {
		return err
	}

	s.println(messages.CreatedDirectory(path))
	return nil
}

func runRmdir(s Service, args []string, _ LineReader) error {
	path, err := s.FileSystem.Rmdir(args[0])
	if err != nil {
		return err
	}

	s.println(messages.RemovedDirectory(path))
	return nil
}

func runChdir(s Service, args []string, _ LineReader) error {
	return s.FileSystem.Chdir(args[0])
}

// runChmod passes unparsable modes on as -1 so that a missing file is still reported first.
func runChmod(s Service, args []string, _ LineReader) error {
	perm, err := strconv.Atoi(args[1])
	if err != nil {
		perm = -1
	}

	if err := s.FileSystem.Chmod(args[0], perm); err != nil {
		return err
	}

	s.println(messages.PermissionsChanged(args[0], perm))
	return nil
}

func describeChmod(err error, args []string) (string, bool) {
	if errors.Is(err, fs.ErrInvalidPermission) {
		return messages.InvalidPermissions(args[1]), true
	}
	return "", false
}

func runStat(s Service, _ []string, _ LineReader) error {
	s.println(messages.FormatUsage(s.FileSystem.Usage()))
	return nil
}

func runHelp(s Service, _ []string, _ LineReader) error {
	s.println(messages.Help())
	return nil
}
