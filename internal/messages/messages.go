package messages

import (
	"fmt"
	"strings"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
)

const (
	Farewell      = "OS shutting down..."
	ContentPrompt = "Enter content: "
)

func Banner(version string) string {
	return fmt.Sprintf("Simple OS v%s\nType 'help' for a list of commands", version)
}

func Prompt(wd string) string {
	return wd + "> "
}

// FormatListing renders a directory listing: a header followed by one line per entry with its
// permission string, a [DIR] tag for directories and its display name.
func FormatListing(wd string, entries []fs.DirEntry) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Files in %s:", wd))
	for _, entry := range entries {
		builder.WriteString("\n  ")
		builder.WriteString(entry.Perm().String())
		builder.WriteString(" ")
		if entry.IsDir() {
			builder.WriteString("[DIR] ")
		}
		builder.WriteString(entry.Name())
	}

	return builder.String()
}

func FormatUsage(usage fs.Usage) string {
	capacity := "unbounded"
	if usage.Capacity > 0 {
		capacity = fmt.Sprint(usage.Capacity)
	}

	return fmt.Sprintf("Slots: %d/%s, live: %d", usage.Slots, capacity, usage.Live)
}

func Created(path string) string { return "Created file: " + path }
func Written(path string) string { return "Content written to " + path }
func Deleted(path string) string { return "Deleted " + path }
func CreatedDirectory(path string) string { return "Created directory: " + path }
func RemovedDirectory(path string) string { return "Removed directory: " + path }
func UnknownCommand(command string) string { return "Unknown command: " + command }

func Content(path, content string) string {
	return fmt.Sprintf("Content of %s:\n%s", path, content)
}

func Moved(source, newPath string) string {
	return fmt.Sprintf("Moved %s to %s", source, newPath)
}

func Copied(source, newPath string) string {
	return fmt.Sprintf("Copied %s to %s", source, newPath)
}

func Renamed(oldName, newName string) string {
	return fmt.Sprintf("Renamed %s to %s", oldName, newName)
}

func PermissionsChanged(path string, perm int) string {
	return fmt.Sprintf("Changed permissions of %s to %d", path, perm)
}

func InvalidPermissions(raw string) string {
	return fmt.Sprintf("Invalid permissions: %s (must be 0-7)", raw)
}

func Usage(line string) string {
	return "Usage: " + line
}

// FormatError turns an engine error into the line the shell prints for it.
func FormatError(err error) string {
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		return err.Error()
	}

	op, path := pathErr.Op, pathErr.Path

	switch {
	case errors.Is(err, fs.ErrNotExist):
		if op == "cd" || op == "rmdir" {
			return "Directory not found: " + path
		}
		return "File not found: " + path

	case errors.Is(err, fs.ErrExist):
		switch op {
		case "mkdir":
			return "Directory/file already exists: " + path
		case "move", "copy":
			return "Destination file already exists: " + path
		}
		return "File already exists: " + path

	case errors.Is(err, fs.ErrNotDir):
		if op == "move" || op == "copy" {
			return "Destination exists and is not a directory: " + path
		}
		return path + " is not a directory"

	case errors.Is(err, fs.ErrIsDir):
		return path + " is a directory"

	case errors.Is(err, fs.ErrNotEmpty):
		return fmt.Sprintf("Cannot remove directory: %s is not empty", path)

	case errors.Is(err, fs.ErrCapacityExceeded):
		return fmt.Sprintf("Cannot %s: maximum number of files reached", capacityAction(op))

	case errors.Is(err, fs.ErrInvalidPermission):
		return fmt.Sprintf("Invalid permissions for %s (must be 0-7)", path)

	case errors.Is(err, fs.ErrRootEntry):
		return fmt.Sprintf("Cannot %s the root directory", op)
	}

	return err.Error()
}

func capacityAction(op string) string {
	switch op {
	case "mkdir":
		return "create directory"
	case "move":
		return "move file"
	case "copy":
		return "copy file"
	}
	return "create file"
}

const help = `Available commands:
  list / ls              : List all files
  create [filename]      : Create a new file
  write [filename]       : Write content to a file
  read / cat [filename]  : Display file content
  move / mv [src] [dest] : Move a file
  rename [old] [new]     : Rename a file
  delete / rm [filename] : Delete a file
  copy / cp [src] [dest] : Copy a file
  mkdir [dirname]        : Create a new directory
  rmdir [dirname]        : Remove an empty directory
  cd [dirname]           : Change to directory
  chmod [file] [perm]    : Change file permissions (0-7)
  stat                   : Show table usage
  help                   : Show this help
  exit / quit            : Exit the OS`

func Help() string {
	return help
}
