package fs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/simpleos/simpleos-cli/internal/fs"
)

var _ = Describe("Perm", func() {
	DescribeTable("renders the bit pattern",
		func(perm int, expected string) {
			Expect(fs.Perm(perm).String()).To(Equal(expected))
		},
		Entry("0", 0, "---"),
		Entry("1", 1, "--x"),
		Entry("2", 2, "-w-"),
		Entry("3", 3, "-wx"),
		Entry("4", 4, "r--"),
		Entry("5", 5, "r-x"),
		Entry("6", 6, "rw-"),
		Entry("7", 7, "rwx"),
	)

	It("only accepts three bits", func() {
		Expect(fs.Perm(0).Valid()).To(BeTrue())
		Expect(fs.Perm(7).Valid()).To(BeTrue())
		Expect(fs.Perm(8).Valid()).To(BeFalse())
		Expect(fs.Perm(-1).Valid()).To(BeFalse())
	})
})
