package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"os"
	"path/filepath"

	"github.com/simpleos/simpleos-cli/internal/config"
	"github.com/simpleos/simpleos-cli/internal/errors"
	"github.com/simpleos/simpleos-cli/internal/fs"
	"github.com/simpleos/simpleos-cli/internal/memoryfs"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(content string) string {
		path := filepath.Join(dir, "simpleos.yml")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	Describe("Default", func() {
		It("matches the engine defaults", func() {
			cfg := config.Default()
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.MemoryFS(nil)).To(Equal(memoryfs.DefaultConfig()))
		})
	})

	Describe("Load", func() {
		It("reports a missing file", func() {
			_, err := config.Load(filepath.Join(dir, "nope.yml"))
			Expect(errors.Is(err, config.ErrConfigNotFound)).To(BeTrue())
		})

		It("keeps defaults for missing keys", func() {
			cfg, err := config.Load(write("cascade: true\n"))
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Cascade).To(BeTrue())
			Expect(cfg.Capacity).To(Equal(memoryfs.DefaultCapacity))
			Expect(cfg.MaxContentSize).To(Equal(memoryfs.DefaultMaxContentSize))
			Expect(cfg.Seed).To(HaveLen(3))
		})

		It("reads every setting and replaces the seed", func() {
			cfg, err := config.Load(write(`capacity: 0
max_content_size: 16
resolve_paths: true
log:
  level: debug
  format: json
seed:
  - path: notes.txt
    content: hello
  - path: /archive
    dir: true
    perm: 5
`))
			Expect(err).NotTo(HaveOccurred())

			mcfg := cfg.MemoryFS(nil)
			Expect(mcfg.Capacity).To(Equal(0))
			Expect(mcfg.MaxContentSize).To(Equal(16))
			Expect(mcfg.ResolvePaths).To(BeTrue())
			Expect(mcfg.Cascade).To(BeFalse())
			Expect(mcfg.Seed).To(Equal([]memoryfs.SeedEntry{
				{Path: "notes.txt", Content: "hello", Perm: fs.PermFile},
				{Path: "/archive", IsDir: true, Perm: 5},
			}))
			Expect(cfg.Log.Level).To(Equal("debug"))
			Expect(cfg.Log.Format).To(Equal("json"))
		})

		It("rejects unknown keys", func() {
			_, err := config.Load(write("capacty: 10\n"))
			Expect(err).To(MatchError(ContainSubstring("unable to parse")))
		})

		It("rejects invalid settings", func() {
			_, err := config.Load(write("capacity: -1\n"))
			Expect(err).To(MatchError(ContainSubstring("capacity must not be negative")))

			_, err = config.Load(write("seed:\n  - path: a\n    perm: 9\n"))
			Expect(err).To(MatchError(ContainSubstring("invalid permissions 9")))

			_, err = config.Load(write("capacity: 2\n"))
			Expect(err).To(MatchError(ContainSubstring("too small")))

			_, err = config.Load(write("log:\n  level: loud\n"))
			Expect(err).To(MatchError(ContainSubstring("invalid log level")))
		})
	})
})
