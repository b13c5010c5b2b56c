package client_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"pilot-server/internal/application/client"
	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/httpapi"
	"pilot-server/internal/application/persistence"
	"pilot-server/internal/application/usecases"
	"pilot-server/internal/infra/httpserver"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Submission round trip", func() {
	var (
		server *httptest.Server
		path   string
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "applications.ndjson")
		service := usecases.NewIntakeService(persistence.NewNDJSONCapture(path))
		controller := httpapi.NewApplyController(service, httpapi.ApplyControllerConfig{})
		server = httptest.NewServer(httpserver.NewServer(httpserver.ServerOptions{}, controller).Handler())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should capture what the form session assembled", func() {
		panels := domain.NewPanelSession()
		flow := client.NewApplicationFlow(
			client.NewIntakeClient(server.URL, server.Client()),
			panels,
			"https://pilot.example.org/?utm_source=newsletter",
		)
		flow.Edit(fillForm)

		result, err := flow.Submit(context.Background(), domain.TriggerExplicit)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Outcome).To(Equal(domain.OutcomeSubmitted))
		Expect(panels.Submitted()).To(BeTrue())

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
		Expect(lines).To(HaveLen(1))

		var record map[string]any
		Expect(json.Unmarshal([]byte(lines[0]), &record)).To(Succeed())
		Expect(record).To(HaveKeyWithValue("name", "Jane Doe"))
		Expect(record).To(HaveKeyWithValue("email", "jane@acme.org"))
		Expect(record).To(HaveKeyWithValue("organization", "Acme Giving"))
		Expect(record).To(HaveKeyWithValue("currentCrm", "Other: Custom tool"))
		Expect(record).To(HaveKeyWithValue("goals", "Pilot notes:\nKeen to try it"))
		Expect(record).To(HaveKeyWithValue("pageUrl", "https://pilot.example.org/?utm_source=newsletter"))
		Expect(record).To(HaveKeyWithValue("utm", Equal(map[string]any{"utm_source": "newsletter"})))
		Expect(record).To(HaveKeyWithValue("userAgent", "Go-http-client/1.1"))
	})

	It("should drop a filled honeypot without writing", func() {
		flow := client.NewApplicationFlow(client.NewIntakeClient(server.URL, server.Client()), domain.NewPanelSession(), "")
		flow.Edit(func(session *domain.FormSession) {
			fillForm(session)
			session.SetHoneypot("https://spam.example")
		})

		_, err := flow.Submit(context.Background(), domain.TriggerExplicit)

		Expect(err).NotTo(HaveOccurred())
		Expect(path).NotTo(BeAnExistingFile())
	})
})
