package memoryfs

import (
	"github.com/simpleos/simpleos-cli/internal/fs"
)

var _ fs.DirEntry = (*entryInfo)(nil)

type entryInfo struct {
	e *Entry
}

func (ei *entryInfo) Name() string {
	return fs.LastSegment(ei.e.Path)
}

func (ei *entryInfo) Path() string {
	return ei.e.Path
}

func (ei *entryInfo) IsDir() bool {
	return ei.e.IsDir
}

func (ei *entryInfo) Perm() fs.Perm {
	return ei.e.Perm
}
