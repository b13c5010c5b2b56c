package domain

import "sync"

const DefaultContactSource = "unknown"

// Variant is the copy that differs between panels sharing one form component.
type Variant struct {
	Title           string
	Description     string
	SubmitLabel     string
	SubmittingLabel string
	OpenEdgeLabel   string
	CloseEdgeLabel  string
	SuccessTitle    string
	SuccessMessage  string
	FailureMessage  string
}

var CohortApplicationVariant = Variant{
	Title:           "Apply for Cohort 1",
	Description:     "Short application: five fields, about 3-5 minutes.",
	SubmitLabel:     "Submit application",
	SubmittingLabel: "Submitting...",
	OpenEdgeLabel:   "Apply For Cohort 1",
	CloseEdgeLabel:  "Close Application",
	SuccessTitle:    "Application received",
	SuccessMessage:  "Thanks for applying. We'll review your submission and follow up within a few days.",
	FailureMessage:  "Something went wrong. Please try again.",
}

var ContactVariant = Variant{
	Title:           "Get in touch",
	Description:     "Questions, collaboration, or pilot interest - send us a note.",
	SubmitLabel:     "Send message",
	SubmittingLabel: "Sending...",
	SuccessTitle:    "Message received",
	SuccessMessage:  "Thanks for reaching out. We will follow up soon.",
	FailureMessage:  "Something went wrong. Please try again.",
}

func (v Variant) ButtonLabel(submitting bool) string {
	if submitting {
		return v.SubmittingLabel
	}
	return v.SubmitLabel
}

func (v Variant) EdgeLabel(open bool) string {
	if open {
		return v.CloseEdgeLabel
	}
	return v.OpenEdgeLabel
}

// PanelSession is the open/closed state of the side panels, shared by every
// component that can open one. The application and details panels never
// show at the same time.
type PanelSession struct {
	mu            sync.RWMutex
	application   bool
	details       bool
	contact       bool
	contactSource string
	submitted     bool
}

func NewPanelSession() *PanelSession {
	return &PanelSession{contactSource: DefaultContactSource}
}

func (p *PanelSession) IsApplicationOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.application
}

func (p *PanelSession) IsDetailsOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.details
}

func (p *PanelSession) IsContactOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.contact
}

func (p *PanelSession) ContactSource() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.contactSource
}

func (p *PanelSession) Submitted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.submitted
}

func (p *PanelSession) OpenApplication() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.details = false
	p.application = true
}

func (p *PanelSession) CloseApplication() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.application = false
}

// ToggleApplication closes the details panel only when the application
// panel ends up open.
func (p *PanelSession) ToggleApplication() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.application = !p.application
	if p.application {
		p.details = false
	}
}

func (p *PanelSession) OpenDetails() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.application = false
	p.details = true
}

func (p *PanelSession) CloseDetails() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.details = false
}

// OpenContact remembers which trigger opened the panel; a blank source
// becomes DefaultContactSource.
func (p *PanelSession) OpenContact(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if source == "" {
		source = DefaultContactSource
	}
	p.contactSource = source
	p.contact = true
}

func (p *PanelSession) CloseContact() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contact = false
}

// ResetContact closes the contact panel and forgets its source.
func (p *PanelSession) ResetContact() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contact = false
	p.contactSource = DefaultContactSource
}

func (p *PanelSession) MarkSubmitted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = true
}

// ResetAndClose drops the submitted state and closes the application and
// contact panels. The details panel is left alone.
func (p *PanelSession) ResetAndClose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = false
	p.application = false
	p.contact = false
	p.contactSource = DefaultContactSource
}
