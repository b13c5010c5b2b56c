package domain

type SubmitTrigger int

const (
	// TriggerImplicit is a form submit event nobody asked for, e.g. Enter
	// pressed inside a text input.
	TriggerImplicit SubmitTrigger = iota
	// TriggerExplicit is an activation of the submit control.
	TriggerExplicit
)

type SubmitOutcome string

const (
	OutcomeIgnored   SubmitOutcome = "ignored"
	OutcomeBusy      SubmitOutcome = "busy"
	OutcomeBlocked   SubmitOutcome = "blocked"
	OutcomeAdvanced  SubmitOutcome = "advanced"
	OutcomeSubmitted SubmitOutcome = "submitted"
)

type SubmitResult struct {
	Outcome SubmitOutcome
	// Field is the first missing field when Outcome is OutcomeBlocked.
	Field   FieldKey
	Payload *SubmissionPayload
}

type SubmitHandler func(SubmissionPayload)

// FormSession holds the state of one application panel from mount until the
// submission succeeds or the panel is closed. It is not safe for concurrent
// use; the UI drives it from a single goroutine.
type FormSession struct {
	form            Form
	honeypot        string
	active          Section
	attemptedSubmit bool
	submitting      bool
	pendingFocus    FieldKey
	onSubmit        SubmitHandler
}

func NewFormSession(onSubmit SubmitHandler) *FormSession {
	return &FormSession{
		active:   SectionOrg,
		onSubmit: onSubmit,
	}
}

func (s *FormSession) Form() Form {
	return s.form
}

func (s *FormSession) Honeypot() string {
	return s.honeypot
}

func (s *FormSession) ActiveSection() Section {
	return s.active
}

func (s *FormSession) AttemptedSubmit() bool {
	return s.attemptedSubmit
}

func (s *FormSession) IsSubmitting() bool {
	return s.submitting
}

func (s *FormSession) Update(edit func(*Form)) {
	edit(&s.form)
}

// SetCurrentSystem keeps the free-text companion only while "Other" is selected.
func (s *FormSession) SetCurrentSystem(value string) {
	s.form.CurrentSystem = value
	if value != OtherCurrentSystem {
		s.form.CurrentSystemOther = ""
	}
}

func (s *FormSession) SetHoneypot(value string) {
	s.honeypot = value
}

func (s *FormSession) Next() {
	s.active = s.active.Next()
}

func (s *FormSession) Previous() {
	s.active = s.active.Previous()
}

// Select jumps straight to a section; there is no gate on tab selection.
func (s *FormSession) Select(section Section) {
	if section.IsValid() {
		s.active = section
	}
}

func (s *FormSession) Missing() []FieldKey {
	return RequiredMissing(s.form)
}

func (s *FormSession) CanSubmit() bool {
	return CanSubmit(s.form)
}

func (s *FormSession) SectionComplete(section Section) bool {
	return SectionComplete(s.form, section)
}

// ShowInlineError stays false until the first explicit submit attempt.
func (s *FormSession) ShowInlineError(field FieldKey) bool {
	if !s.attemptedSubmit {
		return false
	}
	for _, key := range s.Missing() {
		if key == field {
			return true
		}
	}
	return false
}

// MissingSummary is empty until the first explicit submit attempt.
func (s *FormSession) MissingSummary() string {
	if !s.attemptedSubmit {
		return ""
	}
	return MissingSummary(s.Missing())
}

// TakePendingFocus returns the field that must receive focus once the newly
// selected section has been painted, and clears the request.
func (s *FormSession) TakePendingFocus() (FieldKey, bool) {
	field := s.pendingFocus
	s.pendingFocus = ""
	return field, field != ""
}

func (s *FormSession) BeginSubmitting() {
	s.submitting = true
}

func (s *FormSession) EndSubmitting() {
	s.submitting = false
}

func (s *FormSession) SubmitAttempt(trigger SubmitTrigger) SubmitResult {
	if trigger != TriggerExplicit {
		return SubmitResult{Outcome: OutcomeIgnored}
	}
	if s.submitting {
		return SubmitResult{Outcome: OutcomeBusy}
	}

	s.attemptedSubmit = true

	if missing := s.Missing(); len(missing) > 0 {
		first := missing[0]
		s.active = first.Section()
		s.pendingFocus = first
		return SubmitResult{Outcome: OutcomeBlocked, Field: first}
	}

	if s.active != SectionReadiness {
		s.active = SectionReadiness
		return SubmitResult{Outcome: OutcomeAdvanced}
	}

	payload := AssembleSubmission(s.form, s.honeypot)
	if s.onSubmit != nil {
		s.onSubmit(payload)
	}
	return SubmitResult{Outcome: OutcomeSubmitted, Payload: &payload}
}

// Reset discards everything typed so far and returns to the first section.
func (s *FormSession) Reset() {
	onSubmit := s.onSubmit
	*s = FormSession{active: SectionOrg, onSubmit: onSubmit}
}
