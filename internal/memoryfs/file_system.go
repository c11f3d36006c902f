package memoryfs

import (
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
)

var _ fs.FileSystem = (*MemoryFS)(nil)

// MemoryFS is the filesystem engine: a flat table of entries plus the current directory.
//
// By default only Mkdir and Rmdir resolve their argument against the current directory and
// Chdir looks the literal name up before appending it. Every other operation addresses the
// table with the argument exactly as given. Config.ResolvePaths canonicalizes everything.
type MemoryFS struct {
	wd    string
	table *Table
	cfg   Config
	log   *zap.Logger
}

func NewFS(cfg Config) (*MemoryFS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	mfs := &MemoryFS{
		wd:    fs.Root,
		table: NewTable(cfg.Capacity),
		cfg:   cfg,
		log:   log,
	}

	if _, err := mfs.insert(NewDir(fs.Root)); err != nil {
		return nil, errors.Wrap(err, "unable to create root directory")
	}

	for _, seed := range cfg.Seed {
		if _, err := mfs.insert(seed.entry()); err != nil {
			return nil, errors.Wrapf(err, "unable to seed %q", seed.Path)
		}
	}

	return mfs, nil
}

func (mfs *MemoryFS) List() ([]fs.DirEntry, error) {
	entries := make([]fs.DirEntry, 0)
	for e := range mfs.table.AllLive() {
		if mfs.wd == fs.Root {
			if !fs.IsRootLevel(e.Path) {
				continue
			}
		} else if !fs.IsDirectChildOf(e.Path, mfs.wd) {
			continue
		}

		entries = append(entries, &entryInfo{e: e})
	}

	return entries, nil
}

func (mfs *MemoryFS) Create(name string) error {
	path := mfs.resolve(name)

	if mfs.table.Full() {
		return fs.NewPathError("create", path, fs.ErrCapacityExceeded)
	}
	if _, ok := mfs.table.FindLive(path); ok {
		return fs.NewPathError("create", path, fs.ErrExist)
	}

	if _, err := mfs.insert(NewFile(path, nil)); err != nil {
		return fs.NewPathError("create", path, err)
	}
	return nil
}

func (mfs *MemoryFS) Write(name, content string) error {
	path := mfs.resolve(name)

	e, ok := mfs.table.FindLive(path)
	if !ok {
		return fs.NewPathError("write", path, fs.ErrNotExist)
	}
	if e.IsDir {
		return fs.NewPathError("write", path, fs.ErrIsDir)
	}

	contents := []byte(content)
	if limit := mfs.cfg.MaxContentSize; limit > 0 && len(contents) > limit {
		mfs.log.Debug("truncating content", zap.String("path", path), zap.Int("size", len(contents)), zap.Int("limit", limit))
		contents = contents[:limit]
	}

	e.replaceContents(contents)
	mfs.log.Debug("wrote entry", zap.String("path", path), zap.Int("slot", int(e.Slot)), zap.Int("size", len(contents)))
	return nil
}

func (mfs *MemoryFS) Read(name string) (string, error) {
	path := mfs.resolve(name)

	e, ok := mfs.table.FindLive(path)
	if !ok {
		return "", fs.NewPathError("read", path, fs.ErrNotExist)
	}

	return string(e.contents), nil
}

// Delete soft-deletes the entry at name. Without Config.Cascade the rows below a deleted
// directory stay live and become unreachable from listings.
func (mfs *MemoryFS) Delete(name string) error {
	path := mfs.resolve(name)

	if path == fs.Root {
		return fs.NewPathError("delete", path, fs.ErrRootEntry)
	}
	if _, ok := mfs.table.FindLive(path); !ok {
		return fs.NewPathError("delete", path, fs.ErrNotExist)
	}

	if mfs.cfg.Cascade {
		for _, descendant := range mfs.descendants(path) {
			mfs.markDeleted(descendant.Path)
		}
	}

	mfs.markDeleted(path)
	return nil
}

// Rename changes the path of an entry in place. Without Config.Cascade the rows below a renamed
// directory keep their old prefix.
func (mfs *MemoryFS) Rename(oldName, newName string) error {
	oldPath := mfs.resolve(oldName)
	newPath := mfs.resolve(newName)

	if oldPath == fs.Root {
		return fs.NewPathError("rename", oldPath, fs.ErrRootEntry)
	}
	e, ok := mfs.table.FindLive(oldPath)
	if !ok {
		return fs.NewPathError("rename", oldPath, fs.ErrNotExist)
	}
	if oldPath == newPath {
		return nil
	}
	if _, ok := mfs.table.FindLive(newPath); ok {
		return fs.NewPathError("rename", newPath, fs.ErrExist)
	}

	var moved []*Entry
	if mfs.cfg.Cascade {
		moved = mfs.descendants(oldPath)
		for _, d := range moved {
			target := newPath + strings.TrimPrefix(d.Path, oldPath)
			if _, ok := mfs.table.FindLive(target); ok {
				return fs.NewPathError("rename", target, fs.ErrExist)
			}
		}
	}

	mfs.rekey(e, newPath)
	for _, d := range moved {
		mfs.rekey(d, newPath+strings.TrimPrefix(d.Path, oldPath))
	}

	return nil
}

// Move copies the source entry to its destination and soft-deletes the source. A live directory
// destination receives the source under the source name exactly as given, so moving "a/b" into
// "c" yields "c/a/b".
func (mfs *MemoryFS) Move(source, destination string) (string, error) {
	src, newPath, err := mfs.transfer("move", source, destination)
	if err != nil {
		return "", err
	}

	mfs.markDeleted(src.Path)
	return newPath, nil
}

// Copy is Move without deleting the source.
func (mfs *MemoryFS) Copy(source, destination string) (string, error) {
	_, newPath, err := mfs.transfer("copy", source, destination)
	return newPath, err
}

func (mfs *MemoryFS) Mkdir(name string) (string, error) {
	path := fs.Canonicalize(name, mfs.wd)

	if mfs.table.Full() {
		return path, fs.NewPathError("mkdir", path, fs.ErrCapacityExceeded)
	}
	if _, ok := mfs.table.FindLive(path); ok {
		return path, fs.NewPathError("mkdir", path, fs.ErrExist)
	}

	if _, err := mfs.insert(NewDir(path)); err != nil {
		return path, fs.NewPathError("mkdir", path, err)
	}
	return path, nil
}

func (mfs *MemoryFS) Rmdir(name string) (string, error) {
	path := fs.Canonicalize(name, mfs.wd)

	e, ok := mfs.table.FindLive(path)
	if !ok {
		return path, fs.NewPathError("rmdir", path, fs.ErrNotExist)
	}
	if !e.IsDir {
		return path, fs.NewPathError("rmdir", path, fs.ErrNotDir)
	}
	if path == fs.Root {
		return path, fs.NewPathError("rmdir", path, fs.ErrRootEntry)
	}
	if len(mfs.descendants(path)) > 0 {
		return path, fs.NewPathError("rmdir", path, fs.ErrNotEmpty)
	}

	mfs.markDeleted(path)
	return path, nil
}

// Chdir enters a directory. The name is looked up literally and then appended to the current
// directory, so it only descends into entries whose stored path is that short name. The new
// current directory is not re-validated by later operations.
func (mfs *MemoryFS) Chdir(name string) error {
	switch name {
	case fs.Root:
		mfs.wd = fs.Root
		return nil
	case "..":
		if i := strings.LastIndex(mfs.wd, fs.Separator); i > 0 {
			mfs.wd = mfs.wd[:i]
		} else {
			mfs.wd = fs.Root
		}
		return nil
	}

	lookup := name
	if mfs.cfg.ResolvePaths {
		lookup = fs.Canonicalize(name, mfs.wd)
	}

	e, ok := mfs.table.FindLive(lookup)
	if !ok {
		return fs.NewPathError("cd", name, fs.ErrNotExist)
	}
	if !e.IsDir {
		return fs.NewPathError("cd", name, fs.ErrNotDir)
	}

	if mfs.cfg.ResolvePaths {
		mfs.wd = lookup
	} else {
		mfs.wd = fs.Join(mfs.wd, name)
	}
	return nil
}

func (mfs *MemoryFS) Chmod(name string, perm int) error {
	path := mfs.resolve(name)

	e, ok := mfs.table.FindLive(path)
	if !ok {
		return fs.NewPathError("chmod", path, fs.ErrNotExist)
	}
	if !fs.Perm(perm).Valid() {
		return fs.NewPathError("chmod", path, fs.ErrInvalidPermission)
	}
	if path == fs.Root {
		return fs.NewPathError("chmod", path, fs.ErrRootEntry)
	}

	e.Perm = fs.Perm(perm)
	e.ModTime = time.Now()
	mfs.log.Debug("changed permissions", zap.String("path", path), zap.Int("slot", int(e.Slot)), zap.Stringer("perm", e.Perm))
	return nil
}

func (mfs *MemoryFS) Getwd() (string, error) {
	return mfs.wd, nil
}

func (mfs *MemoryFS) Stat(name string) (fs.DirEntry, error) {
	path := mfs.resolve(name)

	e, ok := mfs.table.FindLive(path)
	if !ok {
		return nil, fs.NewPathError("stat", path, fs.ErrNotExist)
	}

	return &entryInfo{e: e}, nil
}

func (mfs *MemoryFS) Usage() fs.Usage {
	return fs.Usage{
		Slots:    mfs.table.Len(),
		Live:     mfs.table.LiveCount(),
		Capacity: mfs.table.Capacity(),
	}
}

// Entries exposes the live rows for testing.
func (mfs *MemoryFS) Entries() map[string]*Entry {
	entries := make(map[string]*Entry, mfs.table.LiveCount())
	for e := range mfs.table.AllLive() {
		entries[e.Path] = e
	}
	return entries
}

// transfer resolves the destination of a move or copy and inserts the new row.
func (mfs *MemoryFS) transfer(op, source, destination string) (*Entry, string, error) {
	srcPath := mfs.resolve(source)
	dstPath := mfs.resolve(destination)

	src, ok := mfs.table.FindLive(srcPath)
	if !ok {
		return nil, "", fs.NewPathError(op, srcPath, fs.ErrNotExist)
	}
	if op == "move" && srcPath == fs.Root {
		return nil, "", fs.NewPathError(op, srcPath, fs.ErrRootEntry)
	}

	newPath := dstPath
	if dst, ok := mfs.table.FindLive(dstPath); ok {
		if !dst.IsDir {
			return nil, "", fs.NewPathError(op, dstPath, fs.ErrNotDir)
		}

		name := source
		if mfs.cfg.ResolvePaths {
			name = fs.LastSegment(srcPath)
		}
		newPath = fs.Join(dstPath, name)
	}

	if mfs.table.Full() {
		return nil, "", fs.NewPathError(op, srcPath, fs.ErrCapacityExceeded)
	}
	if _, ok := mfs.table.FindLive(newPath); ok {
		return nil, "", fs.NewPathError(op, newPath, fs.ErrExist)
	}

	if _, err := mfs.insert(src.clone(newPath)); err != nil {
		return nil, "", fs.NewPathError(op, newPath, err)
	}
	return src, newPath, nil
}

func (mfs *MemoryFS) descendants(dir string) []*Entry {
	var found []*Entry
	for e := range mfs.table.AllLive() {
		if fs.IsDescendantOf(e.Path, dir) {
			found = append(found, e)
		}
	}
	return slices.Clip(found)
}

func (mfs *MemoryFS) resolve(name string) string {
	if mfs.cfg.ResolvePaths {
		return fs.Canonicalize(name, mfs.wd)
	}
	return name
}

func (mfs *MemoryFS) insert(e *Entry) (Slot, error) {
	slot, err := mfs.table.Insert(e)
	if err != nil {
		mfs.log.Debug("insert failed", zap.String("path", e.Path), zap.Error(err))
		return 0, err
	}

	mfs.log.Debug("inserted entry",
		zap.String("path", e.Path),
		zap.Int("slot", int(slot)),
		zap.Stringer("id", e.ID),
		zap.Bool("dir", e.IsDir))
	return slot, nil
}

func (mfs *MemoryFS) markDeleted(path string) {
	if e, ok := mfs.table.FindLive(path); ok && mfs.table.MarkDeleted(path) {
		mfs.log.Debug("deleted entry", zap.String("path", path), zap.Int("slot", int(e.Slot)), zap.Stringer("id", e.ID))
	}
}

func (mfs *MemoryFS) rekey(e *Entry, newPath string) {
	oldPath := e.Path
	if err := mfs.table.Rekey(oldPath, newPath); err != nil {
		mfs.log.Debug("rename failed", zap.String("path", oldPath), zap.Error(err))
		return
	}

	e.ModTime = time.Now()
	mfs.log.Debug("renamed entry", zap.String("from", oldPath), zap.String("to", newPath), zap.Int("slot", int(e.Slot)))
}
