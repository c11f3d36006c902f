package fs

type FileSystem interface {
	List() ([]DirEntry, error)
	Create(name string) error
	Write(name, content string) error
	Read(name string) (string, error)
	Delete(name string) error
	Rename(oldName, newName string) error
	Move(source, destination string) (string, error)
	Copy(source, destination string) (string, error)
	Mkdir(name string) (string, error)
	Rmdir(name string) (string, error)
	Chdir(name string) error
	Chmod(name string, perm int) error
	Getwd() (string, error)
	Stat(name string) (DirEntry, error)
	Usage() Usage
}

type DirEntry interface {
	Name() string
	Path() string
	IsDir() bool
	Perm() Perm
}

// Usage summarizes how many table slots are taken. A zero Capacity means unbounded.
type Usage struct {
	Slots    int
	Live     int
	Capacity int
}
