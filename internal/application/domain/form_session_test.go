package domain_test

import (
	"pilot-server/internal/application/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FormSession", func() {
	var (
		session   *domain.FormSession
		submitted []domain.SubmissionPayload
	)

	ginkgo.BeforeEach(func() {
		submitted = nil
		session = domain.NewFormSession(func(payload domain.SubmissionPayload) {
			submitted = append(submitted, payload)
		})
	})

	fill := func() {
		form := completeForm()
		session.Update(func(f *domain.Form) { *f = form })
	}

	ginkgo.It("should start on the org section without inline errors", func() {
		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
		gomega.Expect(session.ShowInlineError(domain.FieldOrgName)).To(gomega.BeFalse())
		gomega.Expect(session.MissingSummary()).To(gomega.BeEmpty())
	})

	ginkgo.It("should navigate without any validation gate", func() {
		session.Next()
		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionSetup))
		session.Next()
		session.Next()
		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionReadiness))
		session.Select(domain.SectionOrg)
		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
		session.Previous()
		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
	})

	ginkgo.It("should ignore unknown sections on select", func() {
		session.Select(domain.Section("billing"))

		gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
	})

	ginkgo.It("should clear the Other text when another system is selected", func() {
		session.SetCurrentSystem(domain.OtherCurrentSystem)
		session.Update(func(f *domain.Form) { f.CurrentSystemOther = "Custom tool" })

		session.SetCurrentSystem("Neon CRM")

		gomega.Expect(session.Form().CurrentSystem).To(gomega.Equal("Neon CRM"))
		gomega.Expect(session.Form().CurrentSystemOther).To(gomega.BeEmpty())
	})

	ginkgo.When("the submit is implicit", func() {
		ginkgo.It("should never invoke the callback", func() {
			fill()
			session.Select(domain.SectionReadiness)

			result := session.SubmitAttempt(domain.TriggerImplicit)

			gomega.Expect(result.Outcome).To(gomega.Equal(domain.OutcomeIgnored))
			gomega.Expect(submitted).To(gomega.BeEmpty())
			gomega.Expect(session.AttemptedSubmit()).To(gomega.BeFalse())
		})
	})

	ginkgo.When("required fields are missing", func() {
		ginkgo.It("should jump to the section of the first missing field and request focus", func() {
			fill()
			session.Update(func(f *domain.Form) { f.DonationsPerMonthBand = "" })
			session.Select(domain.SectionReadiness)

			result := session.SubmitAttempt(domain.TriggerExplicit)

			gomega.Expect(result.Outcome).To(gomega.Equal(domain.OutcomeBlocked))
			gomega.Expect(result.Field).To(gomega.Equal(domain.FieldDonationsPerMonthBand))
			gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionSetup))
			gomega.Expect(submitted).To(gomega.BeEmpty())

			field, ok := session.TakePendingFocus()
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(field).To(gomega.Equal(domain.FieldDonationsPerMonthBand))

			_, ok = session.TakePendingFocus()
			gomega.Expect(ok).To(gomega.BeFalse())
		})

		ginkgo.It("should show inline errors after the first attempt until fixed", func() {
			session.SubmitAttempt(domain.TriggerExplicit)

			gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
			gomega.Expect(session.ShowInlineError(domain.FieldOrgName)).To(gomega.BeTrue())
			gomega.Expect(session.ShowInlineError(domain.FieldCurrentSystem)).To(gomega.BeTrue())
			gomega.Expect(session.MissingSummary()).To(gomega.Equal("Organization name, Primary contact name, Primary contact email +3"))

			session.Update(func(f *domain.Form) { f.OrgName = "Acme" })

			gomega.Expect(session.ShowInlineError(domain.FieldOrgName)).To(gomega.BeFalse())
		})
	})

	ginkgo.When("the form is complete", func() {
		ginkgo.BeforeEach(fill)

		ginkgo.It("should route forward to readiness instead of submitting", func() {
			result := session.SubmitAttempt(domain.TriggerExplicit)

			gomega.Expect(result.Outcome).To(gomega.Equal(domain.OutcomeAdvanced))
			gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionReadiness))
			gomega.Expect(submitted).To(gomega.BeEmpty())
		})

		ginkgo.It("should submit exactly once from readiness", func() {
			session.Select(domain.SectionReadiness)
			session.SetHoneypot("")

			result := session.SubmitAttempt(domain.TriggerExplicit)

			gomega.Expect(result.Outcome).To(gomega.Equal(domain.OutcomeSubmitted))
			gomega.Expect(result.Payload).NotTo(gomega.BeNil())
			gomega.Expect(submitted).To(gomega.HaveLen(1))
			gomega.Expect(submitted[0].Legacy.Organization).To(gomega.Equal("Acme Giving"))
		})

		ginkgo.It("should refuse re-entrant submits while one is in flight", func() {
			session.Select(domain.SectionReadiness)
			session.BeginSubmitting()

			result := session.SubmitAttempt(domain.TriggerExplicit)

			gomega.Expect(result.Outcome).To(gomega.Equal(domain.OutcomeBusy))
			gomega.Expect(submitted).To(gomega.BeEmpty())

			session.EndSubmitting()
			gomega.Expect(session.SubmitAttempt(domain.TriggerExplicit).Outcome).To(gomega.Equal(domain.OutcomeSubmitted))
		})

		ginkgo.It("should forget everything on reset", func() {
			session.Select(domain.SectionReadiness)
			session.SubmitAttempt(domain.TriggerExplicit)

			session.Reset()

			gomega.Expect(session.Form()).To(gomega.Equal(domain.Form{}))
			gomega.Expect(session.ActiveSection()).To(gomega.Equal(domain.SectionOrg))
			gomega.Expect(session.AttemptedSubmit()).To(gomega.BeFalse())
		})
	})
})
