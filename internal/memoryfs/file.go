package memoryfs

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/simpleos/simpleos-cli/internal/fs"
)

// Slot is the position of an entry in the table. Slots are never reused.
type Slot int

// Entry is one row of the table: a file or a directory addressed by its full path.
type Entry struct {
	ID      uuid.UUID
	Slot    Slot
	Path    string
	IsDir   bool
	Perm    fs.Perm
	Exists  bool
	ModTime time.Time

	contents []byte
}

func NewFile(path string, contents []byte) *Entry {
	return &Entry{Path: path, Perm: fs.PermFile, contents: bytes.Clone(contents)}
}

func NewDir(path string) *Entry {
	return &Entry{Path: path, IsDir: true, Perm: fs.PermDir}
}

func (e *Entry) Bytes() []byte {
	return bytes.Clone(e.contents)
}

// clone copies everything but identity and liveness to a new row at path.
func (e *Entry) clone(path string) *Entry {
	return &Entry{
		Path:     path,
		IsDir:    e.IsDir,
		Perm:     e.Perm,
		contents: e.Bytes(),
	}
}

func (e *Entry) replaceContents(contents []byte) {
	e.contents = contents
	e.ModTime = time.Now()
}
