package driver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type SentEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// FakeProvider answers like the Resend emails endpoint. It accepts every
// message until told to reject them.
type FakeProvider struct {
	server *httptest.Server

	mu         sync.Mutex
	sent       []SentEmail
	status     int
	rejectBody string
}

func NewFakeProvider() *FakeProvider {
	provider := &FakeProvider{status: http.StatusOK}
	provider.server = httptest.NewServer(http.HandlerFunc(provider.handle))
	return provider
}

func (p *FakeProvider) URL() string {
	return p.server.URL
}

func (p *FakeProvider) Close() {
	p.server.Close()
}

func (p *FakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = nil
	p.status = http.StatusOK
	p.rejectBody = ""
}

func (p *FakeProvider) Reject(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.rejectBody = body
}

func (p *FakeProvider) Sent() []SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]SentEmail(nil), p.sent...)
}

func (p *FakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	status, rejectBody := p.status, p.rejectBody
	if status < 300 {
		var email SentEmail
		_ = json.Unmarshal(raw, &email)
		p.sent = append(p.sent, email)
	}
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status >= 300 {
		_, _ = w.Write([]byte(rejectBody))
		return
	}
	_, _ = w.Write([]byte(`{"id":"functional-email"}`))
}
