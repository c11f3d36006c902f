// Package config loads the optional YAML file that sizes the table, picks the path modes and
// replaces the seed entries.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
	"github.com/simpleos/simpleos-cli/internal/logging"
	"github.com/simpleos/simpleos-cli/internal/memoryfs"
)

// ErrConfigNotFound is returned by Load when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

type Config struct {
	Capacity       int            `yaml:"capacity"`
	MaxContentSize int            `yaml:"max_content_size"`
	ResolvePaths   bool           `yaml:"resolve_paths"`
	Cascade        bool           `yaml:"cascade"`
	Seed           []SeedEntry    `yaml:"seed"`
	Log            logging.Config `yaml:"log"`
}

type SeedEntry struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
	Dir     bool   `yaml:"dir"`
	// Perm defaults to 6 for files and 7 for directories.
	Perm *int `yaml:"perm"`
}

func Default() Config {
	cfg := Config{
		Capacity:       memoryfs.DefaultCapacity,
		MaxContentSize: memoryfs.DefaultMaxContentSize,
	}

	for _, seed := range memoryfs.DefaultSeed() {
		perm := int(seed.Perm)
		cfg.Seed = append(cfg.Seed, SeedEntry{Path: seed.Path, Content: seed.Content, Dir: seed.IsDir, Perm: &perm})
	}

	return cfg
}

// Load reads path on top of Default. Keys missing from the file keep their defaults; a seed list
// in the file replaces the default one entirely.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(ErrConfigNotFound, path)
		}
		return Config{}, errors.Wrapf(err, "unable to read %q", path)
	}

	cfg := Default()
	defaultSeed := cfg.Seed
	cfg.Seed = nil

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, errors.Wrapf(err, "unable to parse %q", path)
	}

	if cfg.Seed == nil {
		cfg.Seed = defaultSeed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %q", path)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}

	return c.MemoryFS(nil).Validate()
}

// MemoryFS maps the file settings onto the engine configuration.
func (c Config) MemoryFS(logger *zap.Logger) memoryfs.Config {
	seed := make([]memoryfs.SeedEntry, 0, len(c.Seed))
	for _, s := range c.Seed {
		seed = append(seed, s.memoryFS())
	}

	return memoryfs.Config{
		Capacity:       c.Capacity,
		MaxContentSize: c.MaxContentSize,
		ResolvePaths:   c.ResolvePaths,
		Cascade:        c.Cascade,
		Seed:           seed,
		Logger:         logger,
	}
}

func (s SeedEntry) memoryFS() memoryfs.SeedEntry {
	perm := fs.PermFile
	if s.Dir {
		perm = fs.PermDir
	}
	if s.Perm != nil {
		perm = fs.Perm(*s.Perm)
	}

	return memoryfs.SeedEntry{Path: s.Path, Content: s.Content, IsDir: s.Dir, Perm: perm}
}
