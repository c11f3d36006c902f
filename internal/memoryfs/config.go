package memoryfs

import (
	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
)

const (
	DefaultCapacity       = 100
	DefaultMaxContentSize = 1024
)

type Config struct {
	// Capacity bounds the number of rows, deleted ones included. Zero means unbounded.
	Capacity int
	// MaxContentSize truncates written content. Zero means unbounded.
	MaxContentSize int
	// ResolvePaths canonicalizes every path argument against the current directory.
	ResolvePaths bool
	// Cascade makes Delete and Rename apply to the rows below a directory as well.
	Cascade bool
	Seed    []SeedEntry
	Logger  *zap.Logger
}

type SeedEntry struct {
	Path    string
	Content string
	IsDir   bool
	Perm    fs.Perm
}

func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Path: "readme.txt", Content: "Welcome to SimpleOS!", Perm: fs.PermFile},
		{Path: "sample.txt", Content: "This is a sample file.", Perm: fs.PermFile},
		{Path: "docs", IsDir: true, Perm: fs.PermDir},
	}
}

func DefaultConfig() Config {
	return Config{
		Capacity:       DefaultCapacity,
		MaxContentSize: DefaultMaxContentSize,
		Seed:           DefaultSeed(),
	}
}

func (c Config) Validate() error {
	if c.Capacity < 0 {
		return errors.Errorf("capacity must not be negative, got %d", c.Capacity)
	}

	if c.MaxContentSize < 0 {
		return errors.Errorf("maximum content size must not be negative, got %d", c.MaxContentSize)
	}

	if c.Capacity > 0 && len(c.Seed)+1 > c.Capacity {
		return errors.Errorf("capacity %d is too small for %d seed entries and the root directory", c.Capacity, len(c.Seed))
	}

	seen := make(map[string]struct{}, len(c.Seed))
	for _, seed := range c.Seed {
		if err := seed.Validate(); err != nil {
			return err
		}
		if _, ok := seen[seed.Path]; ok {
			return errors.Errorf("seed entry %q is listed more than once", seed.Path)
		}
		seen[seed.Path] = struct{}{}
	}

	return nil
}

func (s SeedEntry) Validate() error {
	if s.Path == "" {
		return errors.New("seed entry is missing a path")
	}

	if s.Path == fs.Root {
		return errors.New("the root directory is always created and cannot be seeded")
	}

	if !s.Perm.Valid() {
		return errors.Errorf("seed entry %q has invalid permissions %d (must be 0-7)", s.Path, s.Perm)
	}

	if s.IsDir && s.Content != "" {
		return errors.Errorf("seed directory %q cannot have content", s.Path)
	}

	return nil
}

func (s SeedEntry) entry() *Entry {
	if s.IsDir {
		e := NewDir(s.Path)
		e.Perm = s.Perm
		return e
	}

	e := NewFile(s.Path, []byte(s.Content))
	e.Perm = s.Perm
	return e
}
