package mocks

import (
	"github.com/simpleos/simpleos-cli/internal/fs"

	"github.com/pkg/errors"
)

var _ fs.FileSystem = (*FileSystem)(nil)

type FileSystem struct {
	MockList   func() ([]fs.DirEntry, error)
	MockCreate func(name string) error
	MockWrite  func(name, content string) error
	MockRead   func(name string) (string, error)
	MockDelete func(name string) error
	MockRename func(oldName, newName string) error
	MockMove   func(source, destination string) (string, error)
	MockCopy   func(source, destination string) (string, error)
	MockMkdir  func(name string) (string, error)
	MockRmdir  func(name string) (string, error)
	MockChdir  func(name string) error
	MockChmod  func(name string, perm int) error
	MockStat   func(name string) (fs.DirEntry, error)
	MockUsage  func() fs.Usage

	Wd string
}

func (f *FileSystem) List() ([]fs.DirEntry, error) {
	if f.MockList != nil {
		return f.MockList()
	}

	return nil, errors.New("MockList was not configured")
}

func (f *FileSystem) Create(name string) error {
	if f.MockCreate != nil {
		return f.MockCreate(name)
	}

	return errors.New("MockCreate was not configured")
}

func (f *FileSystem) Write(name, content string) error {
	if f.MockWrite != nil {
		return f.MockWrite(name, content)
	}

	return errors.New("MockWrite was not configured")
}

func (f *FileSystem) Read(name string) (string, error) {
	if f.MockRead != nil {
		return f.MockRead(name)
	}

	return "", errors.New("MockRead was not configured")
}

func (f *FileSystem) Delete(name string) error {
	if f.MockDelete != nil {
		return f.MockDelete(name)
	}

	return errors.New("MockDelete was not configured")
}

func (f *FileSystem) Rename(oldName, newName string) error {
	if f.MockRename != nil {
		return f.MockRename(oldName, newName)
	}

	return errors.New("MockRename was not configured")
}

func (f *FileSystem) Move(source, destination string) (string, error) {
	if f.MockMove != nil {
		return f.MockMove(source, destination)
	}

	return "", errors.New("MockMove was not configured")
}

func (f *FileSystem) Copy(source, destination string) (string, error) {
	if f.MockCopy != nil {
		return f.MockCopy(source, destination)
	}

	return "", errors.New("MockCopy was not configured")
}

func (f *FileSystem) Mkdir(name string) (string, error) {
	if f.MockMkdir != nil {
		return f.MockMkdir(name)
	}

	return "", errors.New("MockMkdir was not configured")
}

func (f *FileSystem) Rmdir(name string) (string, error) {
	if f.MockRmdir != nil {
		return f.MockRmdir(name)
	}

	return "", errors.New("MockRmdir was not configured")
}

func (f *FileSystem) Chdir(name string) error {
	if f.MockChdir != nil {
		return f.MockChdir(name)
	}

	return errors.New("MockChdir was not configured")
}

func (f *FileSystem) Chmod(name string, perm int) error {
	if f.MockChmod != nil {
		return f.MockChmod(name, perm)
	}

	return errors.New("MockChmod was not configured")
}

func (f *FileSystem) Getwd() (string, error) {
	if f.Wd == "" {
		return fs.Root, nil
	}

	return f.Wd, nil
}

func (f *FileSystem) Stat(name string) (fs.DirEntry, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.New("MockStat was not configured")
}

func (f *FileSystem) Usage() fs.Usage {
	if f.MockUsage != nil {
		return f.MockUsage()
	}

	return fs.Usage{}
}
