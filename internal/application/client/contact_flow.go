package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"pilot-server/internal/application/domain"
)

var ErrSubmitInFlight = errors.New("a submission is already in flight")

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// ContactFlow drives the contact panel. The source is the one the panel was
// opened with.
type ContactFlow struct {
	mu         sync.Mutex
	panels     *domain.PanelSession
	client     ContactSender
	variant    domain.Variant
	pageURL    string
	form       ContactForm
	honeypot   string
	submitting bool
	submitted  bool
	err        string
}

func NewContactFlow(client ContactSender, panels *domain.PanelSession, pageURL string) *ContactFlow {
	return &ContactFlow{
		panels:  panels,
		client:  client,
		variant: domain.ContactVariant,
		pageURL: pageURL,
	}
}

func (f *ContactFlow) Open(source string) {
	f.panels.OpenContact(strings.TrimSpace(source))
}

func (f *ContactFlow) Update(edit func(*ContactForm)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.form)
}

func (f *ContactFlow) SetHoneypot(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.honeypot = value
}

func (f *ContactFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *ContactFlow) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

func (f *ContactFlow) ButtonLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.variant.ButtonLabel(f.submitting)
}

func (f *ContactFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.err = ""
	request := ContactRequest{
		Name:     f.form.Name,
		Email:    f.form.Email,
		Message:  f.form.Message,
		Source:   f.panels.ContactSource(),
		PageURL:  f.pageURL,
		Honeypot: f.honeypot,
	}
	f.mu.Unlock()

	err := f.client.Send(ctx, request)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		slog.Warn("contact message failed", slog.String("error", err.Error()))
		f.err = f.variant.FailureMessage
		return err
	}

	f.submitted = true
	return nil
}

// Close hides the panel and keeps what was typed.
func (f *ContactFlow) Close() {
	f.panels.CloseContact()
}

// ResetAndClose hides the panel and forgets the message and its source.
func (f *ContactFlow) ResetAndClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = ContactForm{}
	f.honeypot = ""
	f.submitted = false
	f.err = ""
	f.panels.ResetContact()
}
