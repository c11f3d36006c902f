package fs

import (
	iofs "io/fs"

	"github.com/simpleos/simpleos-cli/internal/errors"
)

var (
	ErrExist    = iofs.ErrExist
	ErrNotExist = iofs.ErrNotExist

	ErrCapacityExceeded  = errors.New("maximum number of files reached")
	ErrInvalidPermission = errors.New("invalid permissions")
	ErrIsDir             = errors.New("is a directory")
	ErrNotDir            = errors.New("not a directory")
	ErrNotEmpty          = errors.New("directory not empty")
	ErrRootEntry         = errors.New("root directory cannot be modified")
)

// PathError records a failed operation together with the path it was attempted on.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func NewPathError(op, path string, err error) error {
	return errors.WithStack(&PathError{Op: op, Path: path, Err: err})
}
