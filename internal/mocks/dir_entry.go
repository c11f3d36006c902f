package mocks

import "github.com/simpleos/simpleos-cli/internal/fs"

type DirEntry struct {
	FileName    string
	FilePath    string
	IsDirectory bool
	Mode        fs.Perm
}

func (d DirEntry) Name() string {
	return d.FileName
}

func (d DirEntry) Path() string {
	if d.FilePath == "" {
		return d.FileName
	}
	return d.FilePath
}

func (d DirEntry) IsDir() bool {
	return d.IsDirectory
}

func (d DirEntry) Perm() fs.Perm {
	return d.Mode
}
