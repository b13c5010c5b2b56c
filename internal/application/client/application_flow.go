package client

import (
	"context"
	"log/slog"
	"sync"

	"pilot-server/internal/application/domain"
)

// ApplicationFlow drives one application panel: the form session, the single
// request in flight and the panel state shown afterwards. Failed requests are
// only retried when the user submits again.
type ApplicationFlow struct {
	mu      sync.Mutex
	session *domain.FormSession
	panels  *domain.PanelSession
	client  Applier
	variant domain.Variant
	pageURL string
	err     string
}

func NewApplicationFlow(client Applier, panels *domain.PanelSession, pageURL string) *ApplicationFlow {
	return &ApplicationFlow{
		session: domain.NewFormSession(nil),
		panels:  panels,
		client:  client,
		variant: domain.CohortApplicationVariant,
		pageURL: pageURL,
	}
}

// Edit runs fn against the form session under the flow lock.
func (f *ApplicationFlow) Edit(fn func(session *domain.FormSession)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.session)
}

func (f *ApplicationFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *ApplicationFlow) Submitted() bool {
	return f.panels.Submitted()
}

func (f *ApplicationFlow) ButtonLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.variant.ButtonLabel(f.session.IsSubmitting())
}

// Submit runs the submit gate and, when the form is ready, sends it. The
// returned error is the transport or API failure, if any.
func (f *ApplicationFlow) Submit(ctx context.Context, trigger domain.SubmitTrigger) (domain.SubmitResult, error) {
	f.mu.Lock()
	result := f.session.SubmitAttempt(trigger)
	if result.Outcome != domain.OutcomeSubmitted {
		f.mu.Unlock()
		return result, nil
	}
	f.err = ""
	f.session.BeginSubmitting()
	f.mu.Unlock()

	_, err := f.client.Apply(ctx, ApplyRequest{Payload: *result.Payload, PageURL: f.pageURL})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.session.EndSubmitting()

	if err != nil {
		slog.Warn("application submission failed", slog.String("error", err.Error()))
		f.err = f.variant.FailureMessage
		return result, err
	}

	f.panels.MarkSubmitted()
	return result, nil
}

// ResetAndClose discards the form and the submitted state.
func (f *ApplicationFlow) ResetAndClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session.Reset()
	f.err = ""
	f.panels.ResetAndClose()
}
