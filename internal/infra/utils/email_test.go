package utils_test

import (
	"pilot-server/internal/infra/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IsValidEmail", func() {
	DescribeTable("permissive local@domain.tld pattern",
		func(email string, expected bool) {
			Expect(utils.IsValidEmail(email)).To(Equal(expected))
		},
		Entry("plain address", "jane@x.org", true),
		Entry("subdomain", "jane.smith@mail.northbridge.org", true),
		Entry("plus addressing", "jane+pilot@x.org", true),
		Entry("unicode local part", "zoë@x.org", true),
		Entry("single letter tld", "a@b.c", true),
		Entry("no at sign", "not-an-email", false),
		Entry("no dot in domain", "jane@localhost", false),
		Entry("two at signs", "jane@@x.org", false),
		Entry("inner whitespace", "jane doe@x.org", false),
		Entry("leading whitespace", " jane@x.org", false),
		Entry("quoted local part", `"jane doe"@x.org`, false),
		Entry("empty", "", false),
	)

	It("should explain why an address is rejected", func() {
		err := utils.ValidateEmail("nope")
		Expect(err).To(MatchError(ContainSubstring("invalid email format 'nope'")))
	})
})
