package domain_test

import (
	"pilot-server/internal/application/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("PanelSession", func() {
	var panels *domain.PanelSession

	ginkgo.BeforeEach(func() {
		panels = domain.NewPanelSession()
	})

	ginkgo.It("should keep application and details mutually exclusive", func() {
		panels.OpenDetails()
		panels.OpenApplication()

		gomega.Expect(panels.IsApplicationOpen()).To(gomega.BeTrue())
		gomega.Expect(panels.IsDetailsOpen()).To(gomega.BeFalse())

		panels.OpenDetails()

		gomega.Expect(panels.IsApplicationOpen()).To(gomega.BeFalse())
		gomega.Expect(panels.IsDetailsOpen()).To(gomega.BeTrue())
	})

	ginkgo.It("should only close details when toggling the application open", func() {
		panels.OpenDetails()
		panels.ToggleApplication()

		gomega.Expect(panels.IsApplicationOpen()).To(gomega.BeTrue())
		gomega.Expect(panels.IsDetailsOpen()).To(gomega.BeFalse())

		panels.ToggleApplication()

		gomega.Expect(panels.IsApplicationOpen()).To(gomega.BeFalse())
	})

	ginkgo.It("should remember the contact source until reset", func() {
		gomega.Expect(panels.ContactSource()).To(gomega.Equal("unknown"))

		panels.OpenContact("footer")
		panels.MarkSubmitted()

		gomega.Expect(panels.IsContactOpen()).To(gomega.BeTrue())
		gomega.Expect(panels.ContactSource()).To(gomega.Equal("footer"))

		panels.ResetAndClose()

		gomega.Expect(panels.IsContactOpen()).To(gomega.BeFalse())
		gomega.Expect(panels.Submitted()).To(gomega.BeFalse())
		gomega.Expect(panels.ContactSource()).To(gomega.Equal("unknown"))
	})

	ginkgo.It("should reset only the contact panel", func() {
		panels.OpenApplication()
		panels.OpenContact("hero")

		panels.ResetContact()

		gomega.Expect(panels.IsContactOpen()).To(gomega.BeFalse())
		gomega.Expect(panels.ContactSource()).To(gomega.Equal("unknown"))
		gomega.Expect(panels.IsApplicationOpen()).To(gomega.BeTrue())
	})

	ginkgo.It("should default a blank contact source", func() {
		panels.OpenContact("")

		gomega.Expect(panels.ContactSource()).To(gomega.Equal("unknown"))
	})
})

var _ = ginkgo.Describe("Variant", func() {
	ginkgo.It("should switch labels while submitting", func() {
		gomega.Expect(domain.CohortApplicationVariant.ButtonLabel(false)).To(gomega.Equal("Submit application"))
		gomega.Expect(domain.CohortApplicationVariant.ButtonLabel(true)).To(gomega.Equal("Submitting..."))
		gomega.Expect(domain.ContactVariant.ButtonLabel(true)).To(gomega.Equal("Sending..."))
	})

	ginkgo.It("should flip the edge toggle label", func() {
		gomega.Expect(domain.CohortApplicationVariant.EdgeLabel(false)).To(gomega.Equal("Apply For Cohort 1"))
		gomega.Expect(domain.CohortApplicationVariant.EdgeLabel(true)).To(gomega.Equal("Close Application"))
	})
})
