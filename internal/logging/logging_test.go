package logging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"strings"

	"go.uber.org/zap"

	"github.com/simpleos/simpleos-cli/internal/logging"
)

var _ = Describe("New", func() {
	var out *strings.Builder

	BeforeEach(func() {
		out = new(strings.Builder)
	})

	It("is silent without a level", func() {
		logger, err := logging.New(logging.Config{Output: out})
		Expect(err).NotTo(HaveOccurred())

		logger.Error("ignored")
		Expect(out.String()).To(BeEmpty())
	})

	It("filters below the configured level", func() {
		logger, err := logging.New(logging.Config{Level: "info", Output: out})
		Expect(err).NotTo(HaveOccurred())

		logger.Debug("hidden")
		logger.Info("shown", zap.String("path", "docs"))

		Expect(out.String()).NotTo(ContainSubstring("hidden"))
		Expect(out.String()).To(ContainSubstring("shown"))
		Expect(out.String()).To(ContainSubstring(`"path": "docs"`))
	})

	It("writes json lines", func() {
		logger, err := logging.New(logging.Config{Level: "debug", Format: logging.FormatJSON, Output: out})
		Expect(err).NotTo(HaveOccurred())

		logger.Debug("inserted entry", zap.Int("slot", 4))

		Expect(out.String()).To(ContainSubstring(`"msg":"inserted entry"`))
		Expect(out.String()).To(ContainSubstring(`"slot":4`))
	})

	It("rejects unknown levels and formats", func() {
		_, err := logging.New(logging.Config{Level: "loud"})
		Expect(err).To(MatchError(ContainSubstring(`invalid log level "loud"`)))

		_, err = logging.New(logging.Config{Level: "info", Format: "xml"})
		Expect(err).To(MatchError(ContainSubstring(`invalid log format "xml"`)))
	})
})
