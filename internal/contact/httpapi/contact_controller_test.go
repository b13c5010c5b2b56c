package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"pilot-server/internal/contact/domain"
	"pilot-server/internal/contact/httpapi"
	"pilot-server/internal/contact/usecases"
	"pilot-server/internal/infra/notification"
	mockusecases "pilot-server/test/unit/doubles/contact/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

const validMessage = `{"name":"Ada","email":"ada@example.org","message":"Hello","source":"hero","pageUrl":"https://pilot.example.org/"}`

var _ = Describe("ContactController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockContactService
		recorder    *httptest.ResponseRecorder
	)

	serve := func(method, body string) {
		router := http.NewServeMux()
		httpapi.NewContactController(mockService).AddRoutes(router)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, "/api/contact", strings.NewReader(body)))
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockContactService(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should answer the preflight", func() {
		serve(http.MethodOptions, "")

		Expect(recorder.Code).To(Equal(http.StatusNoContent))
		Expect(recorder.Header().Get("Access-Control-Allow-Methods")).To(Equal("POST, OPTIONS"))
	})

	It("should reject other methods", func() {
		serve(http.MethodPut, validMessage)

		Expect(recorder.Code).To(Equal(http.StatusMethodNotAllowed))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Method not allowed"}`))
	})

	It("should hand the parsed message to the service", func() {
		mockService.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, message domain.ContactMessage) (usecases.ContactOutcome, error) {
				Expect(message.Name).To(Equal("Ada"))
				Expect(message.Source).To(Equal("hero"))
				Expect(message.PageURL).To(Equal("https://pilot.example.org/"))
				return usecases.ContactDelivered, nil
			})

		serve(http.MethodPost, validMessage)

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":true}`))
	})

	It("should answer 400 on validation errors", func() {
		mockService.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecases.ContactOutcome(""), domain.ErrMissingRequiredFields)

		serve(http.MethodPost, `{}`)

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Missing required fields"}`))
	})

	It("should answer 500 when email is not configured", func() {
		mockService.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecases.ContactOutcome(""), &usecases.EmailNotConfiguredError{
			Required: []string{"RESEND_API_KEY", "CONTACT_FROM_EMAIL", "CONTACT_TO_EMAIL"},
			Missing:  []string{"RESEND_API_KEY"},
		})

		serve(http.MethodPost, validMessage)

		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Contact email not configured (set RESEND_API_KEY, CONTACT_FROM_EMAIL, CONTACT_TO_EMAIL)."}`))
	})

	It("should answer 502 with the provider status and body", func() {
		mockService.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecases.ContactOutcome(""), &notification.SendError{
			StatusCode: 403,
			Body:       `{"message":"domain not verified"}`,
		})

		serve(http.MethodPost, validMessage)

		Expect(recorder.Code).To(Equal(http.StatusBadGateway))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Email send failed: 403 {\"message\":\"domain not verified\"}"}`))
	})

	It("should hide anything else behind a generic error", func() {
		mockService.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecases.ContactOutcome(""), errors.New("dial tcp: refused"))

		serve(http.MethodPost, validMessage)

		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Server error"}`))
	})

	It("should answer 500 for malformed json", func() {
		serve(http.MethodPost, `not json`)

		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).To(MatchJSON(`{"ok":false,"error":"Server error"}`))
	})
})
