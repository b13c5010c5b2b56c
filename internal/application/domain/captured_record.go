package domain

import (
	"encoding/json"
	"net/url"
	"strings"

	"pilot-server/internal/infra/utils"
)

var UTMKeys = []string{"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term"}

// UTM holds the campaign parameters a page was opened with. Absent keys are
// omitted from the JSON form.
type UTM struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Content  string `json:"utm_content,omitempty"`
	Term     string `json:"utm_term,omitempty"`
}

func (u UTM) IsZero() bool {
	return u == UTM{}
}

// UTMFromURL reads the five utm_* query parameters of pageURL. An
// unparseable URL yields an empty UTM.
func UTMFromURL(pageURL string) UTM {
	parsed, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return UTM{}
	}
	query := parsed.Query()
	return UTM{
		Source:   query.Get("utm_source"),
		Medium:   query.Get("utm_medium"),
		Campaign: query.Get("utm_campaign"),
		Content:  query.Get("utm_content"),
		Term:     query.Get("utm_term"),
	}
}

// CapturedRecord is what every capture backend persists for an accepted
// application. Field order is the persisted order.
type CapturedRecord struct {
	SubmittedAt  utils.Time      `json:"submittedAt"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Organization string          `json:"organization"`
	CurrentCrm   string          `json:"currentCrm"`
	Goals        string          `json:"goals"`
	PageURL      string          `json:"pageUrl"`
	UTM          json.RawMessage `json:"utm"`
	UserAgent    string          `json:"userAgent"`
}

func NewCapturedRecord(request IntakeRequest, submittedAt utils.Time) CapturedRecord {
	utm := request.UTM
	if len(utm) == 0 {
		utm = json.RawMessage(`{}`)
	}
	return CapturedRecord{
		SubmittedAt:  submittedAt,
		Name:         request.Name,
		Email:        request.Email,
		Organization: request.Organization,
		CurrentCrm:   request.CurrentCrm,
		Goals:        request.Goals,
		PageURL:      request.PageURL,
		UTM:          utm,
		UserAgent:    request.UserAgent,
	}
}

// Row is the spreadsheet layout of the record; the UTM mapping goes last as
// a JSON string.
func (r CapturedRecord) Row() []any {
	utm := string(r.UTM)
	if utm == "" {
		utm = "{}"
	}
	return []any{
		r.SubmittedAt.String(),
		r.Name,
		r.Email,
		r.Organization,
		r.CurrentCrm,
		r.Goals,
		r.PageURL,
		r.UserAgent,
		utm,
	}
}
