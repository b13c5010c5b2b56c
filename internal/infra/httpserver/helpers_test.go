package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Helpers", func() {
	ginkgo.Context("ReplyJSONResponse", func() {
		ginkgo.It("should write the status, charset and unescaped body", func() {
			rec := httptest.NewRecorder()

			ReplyJSONResponse(rec, http.StatusCreated, map[string]string{"url": "https://x.org/?a=1&b=<2>"})

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("application/json; charset=utf-8"))
			gomega.Expect(rec.Body.String()).To(gomega.Equal(`{"url":"https://x.org/?a=1&b=<2>"}`))
		})

		ginkgo.It("should omit an empty request id in errors", func() {
			rec := httptest.NewRecorder()

			ReplyWithError(rec, http.StatusBadRequest, "Invalid email", "")

			gomega.Expect(rec.Body.String()).To(gomega.Equal(`{"ok":false,"error":"Invalid email"}`))
		})

		ginkgo.It("should include the request id when known", func() {
			rec := httptest.NewRecorder()

			ReplyWithError(rec, http.StatusInternalServerError, "Submission failed", "req-1")

			gomega.Expect(rec.Body.String()).To(gomega.Equal(`{"ok":false,"error":"Submission failed","requestId":"req-1"}`))
		})
	})

	ginkgo.Context("DecodeJSONObject", func() {
		decode := func(body string) (map[string]any, error) {
			var out map[string]any
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			err := DecodeJSONObject(httptest.NewRecorder(), req, &out)
			return out, err
		}

		ginkgo.It("should treat a blank body as the empty object", func() {
			out, err := decode("  \n ")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.BeEmpty())
		})

		ginkgo.It("should decode an object", func() {
			out, err := decode(`{"name":"Ada"}`)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.HaveKeyWithValue("name", "Ada"))
		})

		ginkgo.It("should fail on malformed json", func() {
			_, err := decode(`{"name":`)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should treat well-formed json that is not an object as the empty object", func() {
			for _, body := range []string{`[]`, `["a"]`, `"x"`, `42`, `true`, `null`} {
				out, err := decode(body)
				gomega.Expect(err).NotTo(gomega.HaveOccurred(), body)
				gomega.Expect(out).To(gomega.BeEmpty(), body)
			}
		})

		ginkgo.It("should fail on malformed json that is not an object", func() {
			_, err := decode(`[1,`)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("EndpointCORS", func() {
		ginkgo.It("should set methods and headers", func() {
			rec := httptest.NewRecorder()

			EndpointCORS(rec)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(gomega.Equal("POST, OPTIONS"))
			gomega.Expect(rec.Header().Get("Access-Control-Allow-Headers")).To(gomega.Equal("Content-Type"))
		})
	})
})
