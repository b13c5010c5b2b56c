package usecases_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pilot-server/internal/contact/domain"
	"pilot-server/internal/contact/usecases"
	"pilot-server/internal/infra/notification"
	"pilot-server/internal/infra/utils"
	shared "pilot-server/internal/shared_kernel/domain"
	mocknotification "pilot-server/test/unit/doubles/infra/notification"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

func contactMessage(raw string) domain.ContactMessage {
	var body shared.RequestBody
	Expect(json.Unmarshal([]byte(raw), &body)).To(Succeed())
	return domain.NewContactMessage(body)
}

var _ = Describe("ContactService", func() {
	const (
		requestID = "req-1"
		validBody = `{"name":"Ada","email":"ada@example.org","message":"Hello","source":"hero"}`
	)

	var (
		ctrl     *gomock.Controller
		sender   *mocknotification.MockEmailSender
		settings usecases.ContactSettings
		ctx      context.Context
	)

	newService := func() *usecases.SimpleContactService {
		return usecases.NewContactService(settings, sender).WithClock(func() utils.Time {
			return utils.Time{Time: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}
		})
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sender = mocknotification.NewMockEmailSender(ctrl)
		settings = usecases.ContactSettings{
			APIKey:    "re_test",
			FromEmail: "pilot@example.org",
			ToEmail:   "team@example.org",
		}
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should send the rendered message with the default prefix", func() {
		sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request notification.EmailRequest) error {
				Expect(request.From).To(Equal("pilot@example.org"))
				Expect(request.To).To(Equal("team@example.org"))
				Expect(request.ReplyTo).To(Equal("ada@example.org"))
				Expect(request.Subject).To(Equal("[Contact] Ada"))
				Expect(request.Body).To(HavePrefix("[Contact] New message\n\nName: Ada\n"))
				Expect(request.Body).To(ContainSubstring("Source: hero\n"))
				Expect(request.Body).To(ContainSubstring("Submitted At: 2026-03-01T09:30:00.000Z\n"))
				return nil
			})

		outcome, err := newService().Send(ctx, requestID, contactMessage(validBody))

		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(usecases.ContactDelivered))
	})

	It("should use a custom subject prefix", func() {
		settings.SubjectPrefix = "[Pilot]"
		sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request notification.EmailRequest) error {
				Expect(request.Subject).To(Equal("[Pilot] Ada"))
				return nil
			})

		_, err := newService().Send(ctx, requestID, contactMessage(validBody))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should drop a message with a filled trap field", func() {
		outcome, err := newService().Send(ctx, requestID, contactMessage(`{"website":"x"}`))

		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(usecases.ContactDropped))
	})

	It("should validate before checking configuration", func() {
		settings = usecases.ContactSettings{}

		_, err := newService().Send(ctx, requestID, contactMessage(`{"name":"Ada","email":"nope","message":"Hi"}`))

		Expect(err).To(MatchError(domain.ErrInvalidEmail))
	})

	It("should refuse to send when email is not configured", func() {
		settings.ToEmail = "   "

		_, err := newService().Send(ctx, requestID, contactMessage(validBody))

		Expect(errors.Is(err, usecases.ErrEmailNotConfigured)).To(BeTrue())
		Expect(err.Error()).To(Equal("Contact email not configured (set RESEND_API_KEY, CONTACT_FROM_EMAIL, CONTACT_TO_EMAIL)."))

		var configErr *usecases.EmailNotConfiguredError
		Expect(errors.As(err, &configErr)).To(BeTrue())
		Expect(configErr.Missing).To(ConsistOf("CONTACT_TO_EMAIL"))
	})

	It("should name the mailersend key when that provider is selected", func() {
		settings.Provider = "MailerSend"
		settings.APIKey = ""

		_, err := newService().Send(ctx, requestID, contactMessage(validBody))

		Expect(err).To(MatchError("Contact email not configured (set MAILERSEND_API_KEY, CONTACT_FROM_EMAIL, CONTACT_TO_EMAIL)."))
	})

	It("should return provider failures unchanged", func() {
		sendErr := &notification.SendError{StatusCode: 401, Body: `{"message":"bad key"}`}
		sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(sendErr)

		_, err := newService().Send(ctx, requestID, contactMessage(validBody))

		Expect(err).To(BeIdenticalTo(sendErr))
	})
})
